package rules

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/downstack/tiles"
)

// A minimal but complete rule file: every piece uses the same square
// shape, and only T declares kicks.
const testRulesYAML = `
name: boxy
supports180: true
pieces:
  I: &square
    shapes:
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
  J: *square
  L: *square
  O: *square
  S: *square
  Z: *square
  T:
    shapes:
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
      - ["....", ".XX.", ".XX.", "...."]
    kicks:
      clockwise:
        - [[0, 0], [-1, 0]]
        - [[0, 0], [1, 0]]
        - [[0, 0]]
        - [[0, 0]]
`

func TestParseCustomRotationSystem(t *testing.T) {
	is := is.New(t)
	cs, err := ParseCustomRotationSystem(strings.NewReader(testRulesYAML))
	is.NoErr(err)
	is.Equal(cs.Name(), "boxy")
	is.True(cs.Supports180Rotation())

	m := cs.ShapeData(tiles.PieceI, tiles.R0)
	is.True(m.Filled(1, 1))
	is.True(m.Filled(2, 2))
	is.True(!m.Filled(0, 0))

	wk := cs.ClockwiseWallKicks(tiles.PieceT, tiles.R0)
	is.Equal(wk.TestCount(), 2)
	off, err := wk.Offset(1)
	is.NoErr(err)
	is.Equal(off.DX, -1)

	// Pieces without declared kicks get the single zero offset.
	is.Equal(cs.ClockwiseWallKicks(tiles.PieceI, tiles.R0).TestCount(), 1)
	is.Equal(cs.WallKicks180(tiles.PieceT, tiles.R0).TestCount(), 1)

	clone := cs.Clone()
	is.Equal(clone.Name(), "boxy")
	is.True(clone != tiles.RotationSystem(cs))
}

func TestParseCustomRotationSystemErrors(t *testing.T) {
	is := is.New(t)

	// No name.
	_, err := ParseCustomRotationSystem(strings.NewReader("pieces: {}"))
	is.True(err != nil)

	// Missing pieces.
	_, err = ParseCustomRotationSystem(strings.NewReader("name: partial\npieces: {}"))
	is.True(err != nil)

	// Wrong cell count.
	bad := `
name: bad
pieces:
  I:
    shapes:
      - ["X...", "....", "....", "...."]
      - ["X...", "....", "....", "...."]
      - ["X...", "....", "....", "...."]
      - ["X...", "....", "....", "...."]
`
	_, err = ParseCustomRotationSystem(strings.NewReader(bad))
	is.True(err != nil)
}

func TestRegistryWithCustomSystem(t *testing.T) {
	is := is.New(t)
	cs, err := ParseCustomRotationSystem(strings.NewReader(testRulesYAML))
	is.NoErr(err)

	reg := NewRegistry()
	reg.Register(cs)
	got, err := reg.Get("BOXY")
	is.NoErr(err)
	is.Equal(got.Name(), "boxy")
	is.Equal(reg.Names(), []string{"boxy", "srs"})
}
