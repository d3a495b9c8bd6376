package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestRotationArithmetic(t *testing.T) {
	is := is.New(t)
	is.Equal(R0.Clockwise(), R90)
	is.Equal(R270.Clockwise(), R0)
	is.Equal(R0.CounterClockwise(), R270)
	is.Equal(R90.CounterClockwise(), R0)
	is.Equal(R0.Half(), R180)
	is.Equal(R270.Half(), R90)
	for _, r := range []Rotation{R0, R90, R180, R270} {
		is.Equal(r.Clockwise().CounterClockwise(), r)
		is.Equal(r.Half().Half(), r)
	}
}

func TestParsePieceType(t *testing.T) {
	is := is.New(t)
	for _, pt := range AllPieceTypes {
		parsed, err := ParsePieceType(pt.String())
		is.NoErr(err)
		is.Equal(parsed, pt)
	}
	parsed, err := ParsePieceType("t")
	is.NoErr(err)
	is.Equal(parsed, PieceT)
	_, err = ParsePieceType("Q")
	is.True(err != nil)
}

func TestShapeMaskFilled(t *testing.T) {
	is := is.New(t)
	// One cell at (2, 1).
	m := ShapeMask(1 << (1*PieceBoxSize + 2))
	is.True(m.Filled(2, 1))
	is.True(!m.Filled(1, 2))
	is.True(!m.Filled(-1, 0))
	is.True(!m.Filled(0, -1))
	is.True(!m.Filled(4, 0))
	is.True(!m.Filled(0, 4))
}

func TestPieceStateAsMapKey(t *testing.T) {
	is := is.New(t)
	a := PieceState{Type: PieceT, Position: Position{X: 3, Y: 5}, Rotation: R90}
	b := PieceState{Type: PieceT, Position: Position{X: 3, Y: 5}, Rotation: R90}
	c := a
	c.Rotation = R180

	seen := map[PieceState]struct{}{a: {}}
	_, ok := seen[b]
	is.True(ok)
	_, ok = seen[c]
	is.True(!ok)
}

func TestPositionAdd(t *testing.T) {
	is := is.New(t)
	is.Equal(Position{X: 1, Y: 2}.Add(Position{X: -3, Y: 4}), Position{X: -2, Y: 6})
}
