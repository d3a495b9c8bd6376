// Package move contains the value types that describe a single piece
// manipulation: the closed set of move kinds, and the wall-kick offset
// tables consulted when a rotation would otherwise be blocked.
package move

import (
	"errors"
	"fmt"
)

// MoveType is a kind of move; a translation, a rotation, a drop, etc.
type MoveType uint8

const (
	Left MoveType = iota
	Right
	Down
	// Up exists for tests and board setup; gravity never goes up.
	Up
	RotateClockwise
	RotateCounterClockwise
	Rotate180
	HardDrop
	SoftDrop
	Hold
)

// NoWallKick is the wall-kick index carried by moves that do not request
// a kick.
const NoWallKick = -1

// A Move is a single action applied to the active piece. Rotation moves
// may carry a wall-kick candidate index into the active rotation system's
// kick table for the transition being attempted.
type Move struct {
	mtype         MoveType
	wallKickIndex int
}

// NewMove creates a move of the given type with no wall kick.
func NewMove(t MoveType) Move {
	return Move{mtype: t, wallKickIndex: NoWallKick}
}

// NewKickMove creates a rotation move carrying a wall-kick candidate index.
// A kick index on a non-rotation move is a caller bug.
func NewKickMove(t MoveType, wallKickIndex int) (Move, error) {
	m := Move{mtype: t, wallKickIndex: wallKickIndex}
	if !m.IsRotation() && wallKickIndex >= 0 {
		return Move{}, errors.New("wall kick index is only valid for rotation moves")
	}
	return m, nil
}

func (m Move) Type() MoveType { return m.mtype }

// WallKickIndex returns the wall-kick candidate index, or NoWallKick.
func (m Move) WallKickIndex() int { return m.wallKickIndex }

// IsRotation returns whether this move rotates the piece.
func (m Move) IsRotation() bool {
	return m.mtype == RotateClockwise || m.mtype == RotateCounterClockwise ||
		m.mtype == Rotate180
}

// IsTranslation returns whether this move only changes the piece position.
func (m Move) IsTranslation() bool {
	switch m.mtype {
	case Left, Right, Down, Up, HardDrop, SoftDrop:
		return true
	}
	return false
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	var name string
	switch m.mtype {
	case Left:
		name = "Left"
	case Right:
		name = "Right"
	case Down:
		name = "Down"
	case Up:
		name = "Up"
	case RotateClockwise:
		name = "RotateClockwise"
	case RotateCounterClockwise:
		name = "RotateCounterClockwise"
	case Rotate180:
		name = "Rotate180"
	case HardDrop:
		name = "HardDrop"
	case SoftDrop:
		name = "SoftDrop"
	case Hold:
		name = "Hold"
	default:
		return "Unknown"
	}
	if m.IsRotation() && m.wallKickIndex >= 0 {
		return fmt.Sprintf("%s(WK:%d)", name, m.wallKickIndex)
	}
	return name
}
