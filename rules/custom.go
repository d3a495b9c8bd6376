package rules

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// A custom rotation system is described in YAML. Shapes are 4 rows of 4
// characters, top row first; any character other than '.' or ' ' marks a
// filled cell. Kick tables are optional and default to the single zero
// offset.
//
//	name: ars
//	supports180: true
//	pieces:
//	  T:
//	    shapes:
//	      - [".X..", "XXX.", "....", "...."]
//	      - ...
//	    kicks:
//	      clockwise:
//	        - [[0, 0], [-1, 0], [1, 0]]   # from R0
//	        - ...
//	      counterclockwise: ...
//	      half: ...
type customFile struct {
	Name        string                     `yaml:"name"`
	Supports180 bool                       `yaml:"supports180"`
	Pieces      map[string]customPieceFile `yaml:"pieces"`
}

type customPieceFile struct {
	Shapes [][]string       `yaml:"shapes"`
	Kicks  *customKicksFile `yaml:"kicks"`
}

type customKicksFile struct {
	Clockwise        [][][2]int `yaml:"clockwise"`
	CounterClockwise [][][2]int `yaml:"counterclockwise"`
	Half             [][][2]int `yaml:"half"`
}

// CustomRotationSystem is a rotation system loaded from a YAML rule file.
type CustomRotationSystem struct {
	name        string
	supports180 bool
	shapes      [tiles.NumPieceTypes][tiles.NumRotations]tiles.ShapeMask
	cwKicks     [tiles.NumPieceTypes][tiles.NumRotations]move.WallKickData
	ccwKicks    [tiles.NumPieceTypes][tiles.NumRotations]move.WallKickData
	halfKicks   [tiles.NumPieceTypes][tiles.NumRotations]move.WallKickData
}

// LoadCustomRotationSystem reads and validates a YAML rule file.
func LoadCustomRotationSystem(filename string) (*CustomRotationSystem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCustomRotationSystem(f)
}

// ParseCustomRotationSystem parses a YAML rule definition from a reader.
func ParseCustomRotationSystem(r io.Reader) (*CustomRotationSystem, error) {
	var cf customFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("parsing rotation system: %w", err)
	}
	if cf.Name == "" {
		return nil, fmt.Errorf("rotation system has no name")
	}

	cs := &CustomRotationSystem{name: cf.Name, supports180: cf.Supports180}
	seen := [tiles.NumPieceTypes]bool{}
	for letter, pf := range cf.Pieces {
		pt, err := tiles.ParsePieceType(letter)
		if err != nil {
			return nil, fmt.Errorf("rotation system %s: %w", cf.Name, err)
		}
		seen[pt] = true
		if len(pf.Shapes) != tiles.NumRotations {
			return nil, fmt.Errorf("rotation system %s: piece %v needs %d shapes, got %d",
				cf.Name, pt, tiles.NumRotations, len(pf.Shapes))
		}
		for r := 0; r < tiles.NumRotations; r++ {
			mask, err := parseShapeRows(pf.Shapes[r])
			if err != nil {
				return nil, fmt.Errorf("rotation system %s: piece %v rotation %v: %w",
					cf.Name, pt, tiles.Rotation(r), err)
			}
			cs.shapes[pt][r] = mask
		}
		cw, ccw, half, err := parseKicks(pf.Kicks)
		if err != nil {
			return nil, fmt.Errorf("rotation system %s: piece %v: %w", cf.Name, pt, err)
		}
		cs.cwKicks[pt] = cw
		cs.ccwKicks[pt] = ccw
		cs.halfKicks[pt] = half
	}
	for _, pt := range tiles.AllPieceTypes {
		if !seen[pt] {
			return nil, fmt.Errorf("rotation system %s: piece %v is not defined", cf.Name, pt)
		}
	}
	return cs, nil
}

func parseShapeRows(rows []string) (tiles.ShapeMask, error) {
	if len(rows) != tiles.PieceBoxSize {
		return 0, fmt.Errorf("need %d rows, got %d", tiles.PieceBoxSize, len(rows))
	}
	var mask tiles.ShapeMask
	filled := 0
	for i, row := range rows {
		if len(row) != tiles.PieceBoxSize {
			return 0, fmt.Errorf("row %d must be %d characters, got %d",
				i, tiles.PieceBoxSize, len(row))
		}
		// Row 0 in the file is the top of the box.
		y := tiles.PieceBoxSize - 1 - i
		for x := 0; x < tiles.PieceBoxSize; x++ {
			if row[x] == '.' || row[x] == ' ' {
				continue
			}
			mask |= 1 << (y*tiles.PieceBoxSize + x)
			filled++
		}
	}
	if filled != 4 {
		return 0, fmt.Errorf("shape must fill exactly 4 cells, got %d", filled)
	}
	return mask, nil
}

func parseKicks(kf *customKicksFile) (cw, ccw, half [tiles.NumRotations]move.WallKickData, err error) {
	for r := 0; r < tiles.NumRotations; r++ {
		cw[r] = emptyWallKicks
		ccw[r] = emptyWallKicks
		half[r] = emptyWallKicks
	}
	if kf == nil {
		return cw, ccw, half, nil
	}
	if cw, err = parseKickTable(kf.Clockwise, cw); err != nil {
		return cw, ccw, half, fmt.Errorf("clockwise kicks: %w", err)
	}
	if ccw, err = parseKickTable(kf.CounterClockwise, ccw); err != nil {
		return cw, ccw, half, fmt.Errorf("counterclockwise kicks: %w", err)
	}
	if half, err = parseKickTable(kf.Half, half); err != nil {
		return cw, ccw, half, fmt.Errorf("half kicks: %w", err)
	}
	return cw, ccw, half, nil
}

func parseKickTable(raw [][][2]int, out [tiles.NumRotations]move.WallKickData) (
	[tiles.NumRotations]move.WallKickData, error) {

	if raw == nil {
		return out, nil
	}
	if len(raw) != tiles.NumRotations {
		return out, fmt.Errorf("need %d entries (one per source rotation), got %d",
			tiles.NumRotations, len(raw))
	}
	for r, offsets := range raw {
		kicks := make([]move.WallKickOffset, len(offsets))
		for i, o := range offsets {
			kicks[i] = move.WallKickOffset{DX: o[0], DY: o[1]}
		}
		wk, err := move.NewWallKickData(kicks...)
		if err != nil {
			return out, fmt.Errorf("from %v: %w", tiles.Rotation(r), err)
		}
		out[r] = wk
	}
	return out, nil
}

func (c *CustomRotationSystem) Name() string { return c.name }

func (c *CustomRotationSystem) ShapeData(t tiles.PieceType, r tiles.Rotation) tiles.ShapeMask {
	c.check(t)
	return c.shapes[t][r%tiles.NumRotations]
}

func (c *CustomRotationSystem) InitialState(t tiles.PieceType, boardWidth, boardHeight int) tiles.PieceState {
	c.check(t)
	x := (boardWidth - tiles.PieceBoxSize) / 2
	y := 21
	if boardHeight-1 < y {
		y = boardHeight - 1
	}
	return tiles.PieceState{Type: t, Position: tiles.Position{X: x, Y: y}, Rotation: tiles.R0}
}

func (c *CustomRotationSystem) ClockwiseWallKicks(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	c.check(t)
	return c.cwKicks[t][from%tiles.NumRotations]
}

func (c *CustomRotationSystem) CounterClockwiseWallKicks(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	c.check(t)
	return c.ccwKicks[t][from%tiles.NumRotations]
}

func (c *CustomRotationSystem) WallKicks180(t tiles.PieceType, from tiles.Rotation) move.WallKickData {
	c.check(t)
	return c.halfKicks[t][from%tiles.NumRotations]
}

func (c *CustomRotationSystem) Supports180Rotation() bool { return c.supports180 }

func (c *CustomRotationSystem) Clone() tiles.RotationSystem {
	cp := *c
	return &cp
}

func (c *CustomRotationSystem) check(t tiles.PieceType) {
	if int(t) >= tiles.NumPieceTypes {
		panic(fmt.Sprintf("invalid piece type %d", t))
	}
}
