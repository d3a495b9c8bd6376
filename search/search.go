package search

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// ErrNoRotationSystem is returned when a search is started with a piece
// that has no rotation system bound.
var ErrNoRotationSystem = errors.New("piece has no rotation system")

// An Algorithm enumerates landing positions and finds move paths. The
// board and piece passed in are never mutated; a call runs to completion
// on the invoking goroutine. Implementations keep all working state on the
// stack of the call, so one Algorithm value may serve concurrent calls.
type Algorithm interface {
	Name() string
	// FindLandingPositions returns every resting placement reachable from
	// the piece's current state in at most maxDepth moves. A maxDepth of
	// zero or below means unlimited.
	FindLandingPositions(b *board.Board, p *tiles.Piece, maxDepth int) ([]LandingPosition, error)
	// FindPath returns a shortest move sequence from the piece's current
	// state to the target state, or an empty path if the target is
	// unreachable within maxDepth moves. A maxDepth of zero or below
	// means unlimited.
	FindPath(b *board.Board, p *tiles.Piece, target tiles.PieceState, maxDepth int) ([]move.Move, error)
}

// PathSearch is the breadth-first placement search.
type PathSearch struct {
	cfg Config
}

// NewPathSearch creates a breadth-first search with the given move
// configuration.
func NewPathSearch(cfg Config) *PathSearch {
	return &PathSearch{cfg: cfg}
}

func (s *PathSearch) Name() string { return "pathsearch" }

// Config returns the search's move configuration.
func (s *PathSearch) Config() Config { return s.cfg }

// A searchNode is one entry in the BFS arena. Nodes refer to their parent
// by arena index; the root has parent -1.
type searchNode struct {
	state  tiles.PieceState
	mv     move.Move
	parent int32
	depth  int32
}

func (s *PathSearch) FindLandingPositions(b *board.Board, p *tiles.Piece, maxDepth int) ([]LandingPosition, error) {
	var landings []LandingPosition
	err := s.run(b, p, maxDepth, func(arena []searchNode, idx int32) bool {
		n := arena[idx]
		if !IsAtRest(b, p.RotationSystem(), n.state) {
			return false
		}
		if s.cfg.LastRotationOnly && (n.parent < 0 || !n.mv.IsRotation()) {
			return false
		}
		lp := LandingPosition{
			State: n.state,
			Path:  reconstructPath(arena, idx),
			Valid: true,
		}
		if n.parent >= 0 {
			lp.TSpin = ClassifyTSpin(b, n.state, n.mv)
		}
		landings = append(landings, lp)
		return false
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("landings", len(landings)).
		Str("piece", p.State().Type.String()).
		Msg("landing positions found")
	return landings, nil
}

func (s *PathSearch) FindPath(b *board.Board, p *tiles.Piece, target tiles.PieceState, maxDepth int) ([]move.Move, error) {
	var path []move.Move
	err := s.run(b, p, maxDepth, func(arena []searchNode, idx int32) bool {
		if arena[idx].state != target {
			return false
		}
		path = reconstructPath(arena, idx)
		return true
	})
	if err != nil {
		return nil, err
	}
	if path == nil {
		path = []move.Move{}
	}
	return path, nil
}

// run walks the reachable state graph breadth-first. onPop is invoked for
// every dequeued node, before the depth gate; returning true stops the
// search. Depth only limits expansion, so states reached at exactly
// maxDepth moves are still examined. maxDepth <= 0 lifts the limit.
func (s *PathSearch) run(b *board.Board, p *tiles.Piece, maxDepth int,
	onPop func(arena []searchNode, idx int32) bool) error {

	rs := p.RotationSystem()
	if rs == nil {
		return ErrNoRotationSystem
	}
	start := p.State()
	if !CanPlace(b, rs, start) {
		return nil
	}

	arena := make([]searchNode, 1, 64)
	arena[0] = searchNode{state: start, parent: -1}
	visited := map[tiles.PieceState]struct{}{start: {}}
	queue := make([]int32, 1, 64)
	queue[0] = 0

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if onPop(arena, idx) {
			return nil
		}
		n := arena[idx]
		if maxDepth > 0 && int(n.depth) >= maxDepth {
			continue
		}
		for _, mt := range s.expansions(rs) {
			mv, next, ok := s.tryMove(b, rs, n.state, mt)
			if !ok {
				continue
			}
			if s.cfg.Is20G {
				next.Position.Y -= DropDistance(b, rs, next)
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			arena = append(arena, searchNode{
				state:  next,
				mv:     mv,
				parent: idx,
				depth:  n.depth + 1,
			})
			queue = append(queue, int32(len(arena)-1))
		}
	}
	log.Debug().Int("nodes", len(arena)).Msg("search frontier exhausted")
	return nil
}

// reconstructPath walks the parent links from a node back to the root and
// returns the moves in playing order.
func reconstructPath(arena []searchNode, idx int32) []move.Move {
	path := make([]move.Move, 0, arena[idx].depth)
	for i := idx; arena[i].parent >= 0; i = arena[i].parent {
		path = append(path, arena[i].mv)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// expansions lists the move kinds to try from every state. Order is fixed
// so the search is deterministic.
func (s *PathSearch) expansions(rs tiles.RotationSystem) []move.MoveType {
	kinds := make([]move.MoveType, 0, 7)
	kinds = append(kinds, move.Left, move.Right,
		move.RotateClockwise, move.RotateCounterClockwise)
	if s.cfg.AllowRotate180 && rs.Supports180Rotation() {
		kinds = append(kinds, move.Rotate180)
	}
	if s.cfg.AllowSoftDrop {
		kinds = append(kinds, move.Down)
	}
	if s.cfg.AllowHardDrop {
		kinds = append(kinds, move.HardDrop)
	}
	return kinds
}

// tryMove resolves a move kind against the board. Rotations walk the
// wall-kick table in priority order and settle on the first candidate
// that fits, recording its index in the returned move.
func (s *PathSearch) tryMove(b *board.Board, rs tiles.RotationSystem,
	st tiles.PieceState, mt move.MoveType) (move.Move, tiles.PieceState, bool) {

	mv := move.NewMove(mt)
	if !mv.IsRotation() {
		next, ok := ApplyMove(b, rs, st, mv)
		return mv, next, ok
	}
	var wk move.WallKickData
	switch mt {
	case move.RotateClockwise:
		wk = rs.ClockwiseWallKicks(st.Type, st.Rotation)
	case move.RotateCounterClockwise:
		wk = rs.CounterClockwiseWallKicks(st.Type, st.Rotation)
	case move.Rotate180:
		wk = rs.WallKicks180(st.Type, st.Rotation)
	}
	for i := 0; i < wk.TestCount(); i++ {
		kicked, err := move.NewKickMove(mt, i)
		if err != nil {
			return mv, st, false
		}
		next, ok := ApplyMove(b, rs, st, kicked)
		if ok {
			return kicked, next, ok
		}
	}
	return mv, st, false
}
