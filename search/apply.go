package search

import (
	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// CanPlace returns whether every cell the state occupies is on the board
// and empty. One bad cell invalidates the whole placement.
func CanPlace(b *board.Board, rs tiles.RotationSystem, st tiles.PieceState) bool {
	mask := rs.ShapeData(st.Type, st.Rotation)
	for y := 0; y < tiles.PieceBoxSize; y++ {
		for x := 0; x < tiles.PieceBoxSize; x++ {
			if !mask.Filled(x, y) {
				continue
			}
			bx, by := st.Position.X+x, st.Position.Y+y
			if !b.PosExists(bx, by) || b.IsFilled(bx, by) {
				return false
			}
		}
	}
	return true
}

// IsAtRest returns whether the state is legal and cannot move down one
// more row.
func IsAtRest(b *board.Board, rs tiles.RotationSystem, st tiles.PieceState) bool {
	if !CanPlace(b, rs, st) {
		return false
	}
	below := st
	below.Position.Y--
	return !CanPlace(b, rs, below)
}

// DropDistance returns how many rows the state can fall before it rests.
// The state itself must be legal.
//
// Placeability is not monotone in the drop distance: an overhang with a
// cavity under it (every T-spin slot) makes it legal, then blocked, then
// legal again, so a plain binary search over distance can tunnel through
// the blocked band. Instead, each filled cell falls until the nearest
// occupied cell below it in its column (or the floor); the shortest fall
// governs. This is exactly the stepwise one-row descent.
func DropDistance(b *board.Board, rs tiles.RotationSystem, st tiles.PieceState) int {
	mask := rs.ShapeData(st.Type, st.Rotation)
	dist := -1
	for y := 0; y < tiles.PieceBoxSize; y++ {
		for x := 0; x < tiles.PieceBoxSize; x++ {
			if !mask.Filled(x, y) {
				continue
			}
			bx, by := st.Position.X+x, st.Position.Y+y
			d := by
			for yy := by - 1; yy >= 0; yy-- {
				if b.IsFilled(bx, yy) {
					d = by - yy - 1
					break
				}
			}
			if dist < 0 || d < dist {
				dist = d
			}
		}
	}
	if dist < 0 {
		return 0
	}
	return dist
}

// ApplyMove computes the state reached by applying a single move, and
// whether that state is legal. The board and the input state are not
// modified; an illegal outcome returns the input state unchanged.
//
// Rotation moves carry a wall-kick candidate index; an index beyond the
// table for this transition falls back to the raw, unkicked rotation.
func ApplyMove(b *board.Board, rs tiles.RotationSystem, st tiles.PieceState, mv move.Move) (tiles.PieceState, bool) {
	cand := st
	switch mv.Type() {
	case move.Left:
		cand.Position.X--
	case move.Right:
		cand.Position.X++
	case move.Down, move.SoftDrop:
		cand.Position.Y--
	case move.Up:
		cand.Position.Y++
	case move.HardDrop:
		if !CanPlace(b, rs, st) {
			return st, false
		}
		cand.Position.Y -= DropDistance(b, rs, st)
		return cand, true
	case move.RotateClockwise:
		cand.Rotation = st.Rotation.Clockwise()
		cand.Position = kickedPosition(rs.ClockwiseWallKicks(st.Type, st.Rotation),
			mv.WallKickIndex(), st.Position)
	case move.RotateCounterClockwise:
		cand.Rotation = st.Rotation.CounterClockwise()
		cand.Position = kickedPosition(rs.CounterClockwiseWallKicks(st.Type, st.Rotation),
			mv.WallKickIndex(), st.Position)
	case move.Rotate180:
		if !rs.Supports180Rotation() {
			return st, false
		}
		cand.Rotation = st.Rotation.Half()
		cand.Position = kickedPosition(rs.WallKicks180(st.Type, st.Rotation),
			mv.WallKickIndex(), st.Position)
	default:
		return st, false
	}
	if !CanPlace(b, rs, cand) {
		return st, false
	}
	return cand, true
}

// kickedPosition offsets a position by the indexed wall-kick candidate.
// Indexes outside the table, including move.NoWallKick, leave the position
// untouched.
func kickedPosition(wk move.WallKickData, index int, pos tiles.Position) tiles.Position {
	if index < 0 || index >= wk.TestCount() {
		return pos
	}
	off, err := wk.Offset(index)
	if err != nil {
		return pos
	}
	return tiles.Position{X: pos.X + off.DX, Y: pos.Y + off.DY}
}
