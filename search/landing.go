// Package search implements the placement search: breadth-first
// enumeration of every landing position a piece can reach through legal
// move sequences, with the move path and T-spin classification for each.
package search

import (
	"fmt"
	"strings"

	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// TSpinType classifies a landing.
type TSpinType uint8

const (
	TSpinNone TSpinType = iota
	TSpinMini
	TSpinRegular
)

func (t TSpinType) String() string {
	switch t {
	case TSpinNone:
		return "None"
	case TSpinMini:
		return "Mini"
	case TSpinRegular:
		return "Regular"
	}
	return "?"
}

// A LandingPosition is one resting placement reachable from the search's
// starting state, together with the move sequence that reaches it.
// LinesCleared is zero as produced by the search; callers that lock the
// piece fill it in. Valid separates search results from zero values.
type LandingPosition struct {
	State        tiles.PieceState
	Path         []move.Move
	TSpin        TSpinType
	LinesCleared int
	Valid        bool
}

func (l LandingPosition) String() string {
	moves := make([]string, len(l.Path))
	for i, m := range l.Path {
		moves[i] = m.String()
	}
	s := fmt.Sprintf("%v [%s]", l.State, strings.Join(moves, " "))
	if l.TSpin != TSpinNone {
		s += " TSpin:" + l.TSpin.String()
	}
	return s
}

// LastMove returns the final move of the path, or false for an empty path
// (the piece landed where it started).
func (l LandingPosition) LastMove() (move.Move, bool) {
	if len(l.Path) == 0 {
		return move.Move{}, false
	}
	return l.Path[len(l.Path)-1], true
}
