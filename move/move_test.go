package move

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewKickMove(t *testing.T) {
	is := is.New(t)
	mv, err := NewKickMove(RotateClockwise, 3)
	is.NoErr(err)
	is.Equal(mv.WallKickIndex(), 3)
	is.Equal(mv.Type(), RotateClockwise)

	_, err = NewKickMove(Left, 2)
	is.True(err != nil)

	plain := NewMove(Left)
	is.Equal(plain.WallKickIndex(), NoWallKick)
}

func TestMoveKinds(t *testing.T) {
	is := is.New(t)
	for _, mt := range []MoveType{RotateClockwise, RotateCounterClockwise, Rotate180} {
		is.True(NewMove(mt).IsRotation())
		is.True(!NewMove(mt).IsTranslation())
	}
	for _, mt := range []MoveType{Left, Right, Down, Up, HardDrop, SoftDrop} {
		is.True(NewMove(mt).IsTranslation())
		is.True(!NewMove(mt).IsRotation())
	}
	is.True(!NewMove(Hold).IsRotation())
	is.True(!NewMove(Hold).IsTranslation())
}

func TestMoveString(t *testing.T) {
	is := is.New(t)
	is.Equal(NewMove(Left).String(), "Left")
	mv, err := NewKickMove(RotateClockwise, 2)
	is.NoErr(err)
	is.Equal(mv.String(), "RotateClockwise(WK:2)")
}

func TestWallKickData(t *testing.T) {
	is := is.New(t)
	wk, err := NewWallKickData(
		WallKickOffset{DX: 0, DY: 0},
		WallKickOffset{DX: -1, DY: 2},
	)
	is.NoErr(err)
	is.Equal(wk.TestCount(), 2)

	off, err := wk.Offset(1)
	is.NoErr(err)
	is.Equal(off, WallKickOffset{DX: -1, DY: 2})

	_, err = wk.Offset(2)
	is.True(err != nil)
	_, err = wk.Offset(-1)
	is.True(err != nil)

	// Too many candidates.
	many := make([]WallKickOffset, MaxWallKickTests+1)
	_, err = NewWallKickData(many...)
	is.True(err != nil)
}
