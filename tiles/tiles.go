// Package tiles contains the tetromino value types: piece kinds, rotation
// states, positions, and the Piece structure that binds a piece state to a
// rotation system and caches its shape data.
package tiles

import (
	"fmt"

	"github.com/domino14/downstack/move"
)

// PieceType is one of the seven tetromino kinds.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// NumPieceTypes is the number of tetromino kinds.
const NumPieceTypes = 7

// AllPieceTypes lists every piece type, in enum order.
var AllPieceTypes = [NumPieceTypes]PieceType{
	PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ,
}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	}
	return "?"
}

// ParsePieceType converts a one-letter name into a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "I", "i":
		return PieceI, nil
	case "J", "j":
		return PieceJ, nil
	case "L", "l":
		return PieceL, nil
	case "O", "o":
		return PieceO, nil
	case "S", "s":
		return PieceS, nil
	case "T", "t":
		return PieceT, nil
	case "Z", "z":
		return PieceZ, nil
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// Rotation is one of the four 90-degree orientations of a piece.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// NumRotations is the number of rotation states.
const NumRotations = 4

// Clockwise returns the rotation after a clockwise quarter turn.
func (r Rotation) Clockwise() Rotation { return (r + 1) % NumRotations }

// CounterClockwise returns the rotation after a counter-clockwise quarter
// turn.
func (r Rotation) CounterClockwise() Rotation { return (r + 3) % NumRotations }

// Half returns the rotation after a 180-degree turn.
func (r Rotation) Half() Rotation { return (r + 2) % NumRotations }

func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	}
	return "?"
}

// A Position is a cell coordinate on the board. (0,0) is the bottom-left
// corner; y grows upward.
type Position struct {
	X int
	Y int
}

// Add returns the componentwise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// A PieceState is the full state of a tetromino: its kind, the board
// position of its 4x4 box origin, and its rotation. It is a comparable
// value type; the search uses it directly as a visited-set key.
type PieceState struct {
	Type     PieceType
	Position Position
	Rotation Rotation
}

func (s PieceState) String() string {
	return fmt.Sprintf("%v@(%d,%d)%v", s.Type, s.Position.X, s.Position.Y, s.Rotation)
}

// PieceBoxSize is the side of the square box every shape mask lives in.
const PieceBoxSize = 4

// A ShapeMask is the 4x4 occupancy mask of a piece in one rotation. Bit
// y*4+x is set when local cell (x, y) is filled; (0,0) is the bottom-left
// of the box, matching board orientation.
type ShapeMask uint16

// Filled reports whether local cell (x, y) is set. Out-of-box coordinates
// are never filled.
func (m ShapeMask) Filled(x, y int) bool {
	if x < 0 || x >= PieceBoxSize || y < 0 || y >= PieceBoxSize {
		return false
	}
	return m&(1<<(y*PieceBoxSize+x)) != 0
}

// A RotationSystem supplies shape masks, spawn states and wall-kick tables
// for a rule set. Implementations must be defined for all 7 piece types and
// 4 rotations; passing an invalid piece type is a programming error and
// panics. Implementations are stateless and safe for concurrent use.
type RotationSystem interface {
	// Name returns the rule set name, e.g. "SRS".
	Name() string
	// ShapeData returns the occupancy mask for a type/rotation pair.
	ShapeData(t PieceType, r Rotation) ShapeMask
	// InitialState returns the centered, near-top spawn state for a piece
	// on a board of the given dimensions.
	InitialState(t PieceType, boardWidth, boardHeight int) PieceState
	// ClockwiseWallKicks returns the kick candidates for a clockwise
	// rotation, keyed by the rotation state before the turn.
	ClockwiseWallKicks(t PieceType, from Rotation) move.WallKickData
	// CounterClockwiseWallKicks returns the kick candidates for a
	// counter-clockwise rotation, keyed by the rotation state before the
	// turn.
	CounterClockwiseWallKicks(t PieceType, from Rotation) move.WallKickData
	// WallKicks180 returns the kick candidates for a 180-degree rotation,
	// keyed by the rotation state before the turn.
	WallKicks180(t PieceType, from Rotation) move.WallKickData
	// Supports180Rotation reports whether this rule set permits 180-degree
	// rotations at all.
	Supports180Rotation() bool
	// Clone returns an independent copy of this rotation system.
	Clone() RotationSystem
}
