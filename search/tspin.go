package search

import (
	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// ClassifyTSpin classifies a resting T piece using the 3-corner rule. It
// returns TSpinNone unless the piece is a T and the move that produced the
// state was a rotation.
//
// The four diagonal neighbors of the pivot cell are labeled
//
//	A . B
//	. T .
//	C . D
//
// Cells off the board count as occupied. Three or more occupied corners
// make a regular T-spin. Exactly two occupied corners make a mini when
// they are the pair facing the piece's flat side for its rotation.
func ClassifyTSpin(b *board.Board, st tiles.PieceState, lastMove move.Move) TSpinType {
	if st.Type != tiles.PieceT || !lastMove.IsRotation() {
		return TSpinNone
	}
	occupied := func(x, y int) bool {
		return !b.PosExists(x, y) || b.IsFilled(x, y)
	}
	px, py := st.Position.X, st.Position.Y
	a := occupied(px-1, py+1)
	bb := occupied(px+1, py+1)
	c := occupied(px-1, py-1)
	d := occupied(px+1, py-1)

	count := 0
	for _, corner := range [4]bool{a, bb, c, d} {
		if corner {
			count++
		}
	}
	if count >= 3 {
		return TSpinRegular
	}
	if count != 2 {
		return TSpinNone
	}

	var mini bool
	switch st.Rotation {
	case tiles.R0:
		mini = a && bb
	case tiles.R90:
		mini = bb && d
	case tiles.R180:
		mini = c && d
	case tiles.R270:
		mini = a && c
	}
	if mini {
		return TSpinMini
	}
	return TSpinNone
}
