package tiles

import "errors"

// ErrNilRotationSystem is returned when a piece is created or rebound
// without a rotation system.
var ErrNilRotationSystem = errors.New("rotation system cannot be nil")

// A Piece is a tetromino bound to a rotation system, with its shape mask
// and bounding data cached for the current state. The cache is recomputed
// whenever the state or the rotation system changes.
type Piece struct {
	state PieceState
	rs    RotationSystem

	shape  ShapeMask
	width  int
	height int
	// colHeights[x] is the top of column x within the 4x4 box (top+1);
	// colBottoms[x] is the lowest filled y, or PieceBoxSize for an empty
	// column.
	colHeights [PieceBoxSize]int
	colBottoms [PieceBoxSize]int
}

// NewPiece creates a piece with the given state, bound to a rotation
// system.
func NewPiece(state PieceState, rs RotationSystem) (*Piece, error) {
	if rs == nil {
		return nil, ErrNilRotationSystem
	}
	p := &Piece{state: state, rs: rs}
	p.recompute()
	return p, nil
}

// State returns the current piece state.
func (p *Piece) State() PieceState { return p.state }

// SetState replaces the piece state and refreshes the cached shape data.
func (p *Piece) SetState(state PieceState) {
	p.state = state
	p.recompute()
}

// RotationSystem returns the bound rotation system.
func (p *Piece) RotationSystem() RotationSystem { return p.rs }

// SetRotationSystem rebinds the piece to a different rotation system.
func (p *Piece) SetRotationSystem(rs RotationSystem) error {
	if rs == nil {
		return ErrNilRotationSystem
	}
	p.rs = rs
	p.recompute()
	return nil
}

// ShapeData returns the cached 4x4 occupancy mask.
func (p *Piece) ShapeData() ShapeMask { return p.shape }

// Width returns the width of the piece in its current rotation.
func (p *Piece) Width() int { return p.width }

// Height returns the height of the piece in its current rotation.
func (p *Piece) Height() int { return p.height }

// ColumnHeights returns, for each box column, the top of that column
// (highest filled y, plus one); zero for empty columns.
func (p *Piece) ColumnHeights() [PieceBoxSize]int { return p.colHeights }

// ColumnBottoms returns, for each box column, the lowest filled y;
// PieceBoxSize for empty columns.
func (p *Piece) ColumnBottoms() [PieceBoxSize]int { return p.colBottoms }

// FilledCells returns the positions of the four filled cells, relative to
// the piece's box origin.
func (p *Piece) FilledCells() []Position {
	cells := make([]Position, 0, 4)
	for y := 0; y < PieceBoxSize; y++ {
		for x := 0; x < PieceBoxSize; x++ {
			if p.shape.Filled(x, y) {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// AbsoluteFilledCells returns the four filled cells in board coordinates.
func (p *Piece) AbsoluteFilledCells() []Position {
	cells := p.FilledCells()
	for i := range cells {
		cells[i] = cells[i].Add(p.state.Position)
	}
	return cells
}

// Copy returns an independent copy of this piece. The rotation system
// reference is shared; rotation systems are stateless.
func (p *Piece) Copy() *Piece {
	cp := *p
	return &cp
}

func (p *Piece) recompute() {
	p.shape = p.rs.ShapeData(p.state.Type, p.state.Rotation)

	p.width = 0
	p.height = 0
	for x := 0; x < PieceBoxSize; x++ {
		p.colHeights[x] = 0
		p.colBottoms[x] = PieceBoxSize
	}
	for y := 0; y < PieceBoxSize; y++ {
		for x := 0; x < PieceBoxSize; x++ {
			if !p.shape.Filled(x, y) {
				continue
			}
			if x+1 > p.width {
				p.width = x + 1
			}
			if y+1 > p.height {
				p.height = y + 1
			}
			if y+1 > p.colHeights[x] {
				p.colHeights[x] = y + 1
			}
			if y < p.colBottoms[x] {
				p.colBottoms[x] = y
			}
		}
	}
}
