// Package board implements the playfield as a stack of per-row bit masks,
// with cached column heights, the roof, and a filled-cell count.
package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	// MinWidth and MinHeight are the smallest usable playfield dimensions.
	MinWidth  = 4
	MinHeight = 4
	// MaxWidth is bounded by the uint32 row masks.
	MaxWidth = 32
	// MaxHeight covers the standard 10x40 field with room to spare.
	MaxHeight = 40
)

// A Board is a fixed-size bit grid. (0,0) is the bottom-left cell; y grows
// upward. Row y is a uint32 with bit x set when cell (x, y) is filled.
//
// The cached column heights, roof and filled count always agree with the
// row bits; every mutator maintains them.
type Board struct {
	width  int
	height int
	// fullRowMask has the low `width` bits set; a row equal to it is full.
	fullRowMask uint32

	rows       []uint32
	colHeights []int
	roof       int
	filled     int
}

// NewBoard creates an empty board. Dimensions outside
// [MinWidth, MaxWidth] x [MinHeight, MaxHeight] are an error.
func NewBoard(width, height int) (*Board, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, fmt.Errorf("board width %d out of range [%d, %d]",
			width, MinWidth, MaxWidth)
	}
	if height < MinHeight || height > MaxHeight {
		return nil, fmt.Errorf("board height %d out of range [%d, %d]",
			height, MinHeight, MaxHeight)
	}
	return &Board{
		width:       width,
		height:      height,
		fullRowMask: uint32(1)<<width - 1,
		rows:        make([]uint32, height),
		colHeights:  make([]int, width),
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// PosExists returns whether (x, y) is on the board.
func (b *Board) PosExists(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsFilled returns whether cell (x, y) is occupied. Coordinates off the
// board always read as empty.
func (b *Board) IsFilled(x, y int) bool {
	if !b.PosExists(x, y) {
		return false
	}
	return b.rows[y]&(1<<x) != 0
}

// FillCell occupies cell (x, y). Off-board coordinates and already-filled
// cells are ignored.
func (b *Board) FillCell(x, y int) {
	if !b.PosExists(x, y) || b.rows[y]&(1<<x) != 0 {
		return
	}
	b.rows[y] |= 1 << x
	b.filled++
	if y+1 > b.colHeights[x] {
		b.colHeights[x] = y + 1
		if y+1 > b.roof {
			b.roof = y + 1
		}
	}
}

// ClearCell empties cell (x, y). Off-board coordinates and already-empty
// cells are ignored.
func (b *Board) ClearCell(x, y int) {
	if !b.PosExists(x, y) || b.rows[y]&(1<<x) == 0 {
		return
	}
	wasRoof := b.colHeights[x] == b.roof
	b.rows[y] &^= 1 << x
	b.filled--
	if y == b.colHeights[x]-1 {
		// Topmost cell of the column went away; rescan downward.
		b.colHeights[x] = 0
		for yy := y - 1; yy >= 0; yy-- {
			if b.rows[yy]&(1<<x) != 0 {
				b.colHeights[x] = yy + 1
				break
			}
		}
		if wasRoof {
			b.recomputeRoof()
		}
	}
}

// IsRowFilled returns whether every cell of row y is occupied.
func (b *Board) IsRowFilled(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.rows[y] == b.fullRowMask
}

// ColumnHeight returns the index of the first empty cell above the stack
// in column x, i.e. one above the topmost filled cell. Off-board columns
// report zero.
func (b *Board) ColumnHeight(x int) int {
	if x < 0 || x >= b.width {
		return 0
	}
	return b.colHeights[x]
}

// Roof returns the highest column height on the board.
func (b *Board) Roof() int { return b.roof }

// FilledCellCount returns the number of occupied cells.
func (b *Board) FilledCellCount() int { return b.filled }

// ClearFilledRows removes every fully occupied row, shifting the rows
// above it down, and returns the number of rows removed.
func (b *Board) ClearFilledRows() int {
	cleared := 0
	for y := 0; y < b.height; {
		if b.rows[y] != b.fullRowMask {
			y++
			continue
		}
		copy(b.rows[y:], b.rows[y+1:])
		b.rows[b.height-1] = 0
		cleared++
		// The next row shifted into this index; examine it again.
	}
	if cleared > 0 {
		b.filled -= cleared * b.width
		b.recomputeHeights()
	}
	return cleared
}

// IsEmpty returns whether no cell is occupied.
func (b *Board) IsEmpty() bool { return b.filled == 0 }

// Reset empties the board.
func (b *Board) Reset() {
	for i := range b.rows {
		b.rows[i] = 0
	}
	for i := range b.colHeights {
		b.colHeights[i] = 0
	}
	b.roof = 0
	b.filled = 0
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cp := &Board{
		width:       b.width,
		height:      b.height,
		fullRowMask: b.fullRowMask,
		rows:        make([]uint32, b.height),
		colHeights:  make([]int, b.width),
		roof:        b.roof,
		filled:      b.filled,
	}
	copy(cp.rows, b.rows)
	copy(cp.colHeights, b.colHeights)
	return cp
}

// CopyFrom copies the contents of another board of the same dimensions
// into this one.
func (b *Board) CopyFrom(other *Board) error {
	if b.width != other.width || b.height != other.height {
		return fmt.Errorf("dimension mismatch: %dx%d vs %dx%d",
			b.width, b.height, other.width, other.height)
	}
	copy(b.rows, other.rows)
	copy(b.colHeights, other.colHeights)
	b.roof = other.roof
	b.filled = other.filled
	return nil
}

// Equals returns whether two boards have the same dimensions and contents.
func (b *Board) Equals(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.rows {
		if b.rows[y] != other.rows[y] {
			return false
		}
	}
	return true
}

// Hash returns a content fingerprint of the board. Boards that Equals each
// other hash identically.
func (b *Board) Hash() uint64 {
	h := xxhash.New()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(b.width))
	h.Write(buf[:])
	for _, row := range b.rows {
		binary.LittleEndian.PutUint32(buf[:], row)
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (b *Board) recomputeHeights() {
	b.roof = 0
	for x := 0; x < b.width; x++ {
		b.colHeights[x] = 0
		for y := b.height - 1; y >= 0; y-- {
			if b.rows[y]&(1<<x) != 0 {
				b.colHeights[x] = y + 1
				break
			}
		}
		if b.colHeights[x] > b.roof {
			b.roof = b.colHeights[x]
		}
	}
}

func (b *Board) recomputeRoof() {
	b.roof = 0
	for x := 0; x < b.width; x++ {
		if b.colHeights[x] > b.roof {
			b.roof = b.colHeights[x]
		}
	}
}
