// Package rules contains concrete rotation systems and the registry used
// to look them up by name at the composition boundary.
package rules

import (
	"fmt"

	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// Reference: https://harddrop.com/wiki/SRS

// Shape masks are tiles.ShapeMask values: bit y*4+x, (0,0) bottom-left.
// One array of four masks per piece type, indexed by rotation.

var iShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000111100000000, // spawn, horizontal
	0b0010001000100010,
	0b0000000011110000,
	0b0100010001000100,
}

// The O piece has the same mask in every rotation.
var oShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000011001100000,
	0b0000011001100000,
	0b0000011001100000,
	0b0000011001100000,
}

var tShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000010011100000,
	0b0000010001100100,
	0b0000000011100100,
	0b0000010011000100,
}

var lShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000001011100000,
	0b0000010001000110,
	0b0000000011101000,
	0b0000110001000100,
}

var jShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000100011100000,
	0b0000011001000100,
	0b0000000011100010,
	0b0000010001001100,
}

var sShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000011011000000,
	0b0000010001100010,
	0b0000000001101100,
	0b0000100011000100,
}

var zShapeData = [tiles.NumRotations]tiles.ShapeMask{
	0b0000110001100000,
	0b0000001001100100,
	0b0000000011000110,
	0b0000010011001000,
}

// Wall-kick tables, indexed by the rotation state before the turn.
// J, L, S, T and Z share one pair of tables; I has its own.

var jlstzClockwiseKicks = [tiles.NumRotations]move.WallKickData{
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: -1, DY: 1}, move.WallKickOffset{DX: 0, DY: -2},
		move.WallKickOffset{DX: -1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: 1, DY: -1}, move.WallKickOffset{DX: 0, DY: 2},
		move.WallKickOffset{DX: 1, DY: 2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: 1, DY: 1}, move.WallKickOffset{DX: 0, DY: -2},
		move.WallKickOffset{DX: 1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: -1, DY: -1}, move.WallKickOffset{DX: 0, DY: 2},
		move.WallKickOffset{DX: -1, DY: 2}),
}

var jlstzCounterClockwiseKicks = [tiles.NumRotations]move.WallKickData{
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: 1, DY: 1}, move.WallKickOffset{DX: 0, DY: -2},
		move.WallKickOffset{DX: 1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: 1, DY: -1}, move.WallKickOffset{DX: 0, DY: 2},
		move.WallKickOffset{DX: 1, DY: 2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: -1, DY: 1}, move.WallKickOffset{DX: 0, DY: -2},
		move.WallKickOffset{DX: -1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: -1, DY: -1}, move.WallKickOffset{DX: 0, DY: 2},
		move.WallKickOffset{DX: -1, DY: 2}),
}

var iClockwiseKicks = [tiles.NumRotations]move.WallKickData{
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -2, DY: 0},
		move.WallKickOffset{DX: 1, DY: 0}, move.WallKickOffset{DX: -2, DY: -1},
		move.WallKickOffset{DX: 1, DY: 2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: 2, DY: 0}, move.WallKickOffset{DX: -1, DY: 2},
		move.WallKickOffset{DX: 2, DY: -1}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 2, DY: 0},
		move.WallKickOffset{DX: -1, DY: 0}, move.WallKickOffset{DX: 2, DY: 1},
		move.WallKickOffset{DX: -1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: -2, DY: 0}, move.WallKickOffset{DX: 1, DY: -2},
		move.WallKickOffset{DX: -2, DY: 1}),
}

var iCounterClockwiseKicks = [tiles.NumRotations]move.WallKickData{
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -1, DY: 0},
		move.WallKickOffset{DX: 2, DY: 0}, move.WallKickOffset{DX: -1, DY: 2},
		move.WallKickOffset{DX: 2, DY: -1}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 2, DY: 0},
		move.WallKickOffset{DX: -1, DY: 0}, move.WallKickOffset{DX: 2, DY: 1},
		move.WallKickOffset{DX: -1, DY: -2}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: 1, DY: 0},
		move.WallKickOffset{DX: -2, DY: 0}, move.WallKickOffset{DX: 1, DY: -2},
		move.WallKickOffset{DX: -2, DY: 1}),
	move.MustWallKickData(
		move.WallKickOffset{DX: 0, DY: 0}, move.WallKickOffset{DX: -2, DY: 0},
		move.WallKickOffset{DX: 1, DY: 0}, move.WallKickOffset{DX: -2, DY: -1},
		move.WallKickOffset{DX: 1, DY: 2}),
}

// Used for the O piece and for all 180-degree turns.
var emptyWallKicks = move.MustWallKickData(move.WallKickOffset{DX: 0, DY: 0})

// SRS implements the Super Rotation System.
type SRS struct{}

// NewSRS creates an SRS rotation system.
func NewSRS() *SRS { return &SRS{} }

func (s *SRS) Name() string { return "SRS" }

func (s *SRS) ShapeData(t tiles.PieceType, r tiles.Rotation) tiles.ShapeMask {
	switch t {
	case tiles.PieceI:
		return iShapeData[r%tiles.NumRotations]
	case tiles.PieceO:
		return oShapeData[r%tiles.NumRotations]
	case tiles.PieceT:
		return tShapeData[r%tiles.NumRotations]
	case tiles.PieceL:
		return lShapeData[r%tiles.NumRotations]
	case tiles.PieceJ:
		return jShapeData[r%tiles.NumRotations]
	case tiles.PieceS:
		return sShapeData[r%tiles.NumRotations]
	case tiles.PieceZ:
		return zShapeData[r%tiles.NumRotations]
	}
	panic(fmt.Sprintf("invalid piece type %d", t))
}

// InitialState spawns pieces centered at the top of the board; the box
// bottom sits at row 21 on a full-height board.
func (s *SRS) InitialState(t tiles.PieceType, boardWidth, boardHeight int) tiles.PieceState {
	x := (boardWidth - tiles.PieceBoxSize) / 2
	y := 21
	if boardHeight-1 < y {
		y = boardHeight - 1
	}
	return tiles.PieceState{Type: t, Position: tiles.Position{X: x, Y: y}, Rotation: tiles.R0}
}

func (s *SRS) ClockwiseWallKicks(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	switch t {
	case tiles.PieceI:
		return iClockwiseKicks[from%tiles.NumRotations]
	case tiles.PieceO:
		return emptyWallKicks
	case tiles.PieceJ, tiles.PieceL, tiles.PieceS, tiles.PieceT, tiles.PieceZ:
		return jlstzClockwiseKicks[from%tiles.NumRotations]
	}
	panic(fmt.Sprintf("invalid piece type %d for wall kicks", t))
}

func (s *SRS) CounterClockwiseWallKicks(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	switch t {
	case tiles.PieceI:
		return iCounterClockwiseKicks[from%tiles.NumRotations]
	case tiles.PieceO:
		return emptyWallKicks
	case tiles.PieceJ, tiles.PieceL, tiles.PieceS, tiles.PieceT, tiles.PieceZ:
		return jlstzCounterClockwiseKicks[from%tiles.NumRotations]
	}
	panic(fmt.Sprintf("invalid piece type %d for wall kicks", t))
}

// WallKicks180 returns the zero offset only; SRS proper has no 180 kicks.
func (s *SRS) WallKicks180(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	return emptyWallKicks
}

// Supports180Rotation reports false; SRS does not permit 180-degree turns.
func (s *SRS) Supports180Rotation() bool { return false }

func (s *SRS) Clone() tiles.RotationSystem { return NewSRS() }
