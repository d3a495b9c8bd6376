package move

import "fmt"

// MaxWallKickTests is the most candidate offsets a single rotation
// transition may carry.
const MaxWallKickTests = 16

// A WallKickOffset is one (dx, dy) candidate tried when a rotation is
// attempted. Index 0 of a table is conventionally the no-kick offset.
type WallKickOffset struct {
	DX int
	DY int
}

// WallKickData is an ordered set of wall-kick candidates for one rotation
// transition. It is immutable once constructed.
type WallKickData struct {
	offsets []WallKickOffset
}

// NewWallKickData creates a kick table from the given offsets, in priority
// order.
func NewWallKickData(offsets ...WallKickOffset) (WallKickData, error) {
	if len(offsets) > MaxWallKickTests {
		return WallKickData{}, fmt.Errorf("too many wall kick tests (%d > %d)",
			len(offsets), MaxWallKickTests)
	}
	cp := make([]WallKickOffset, len(offsets))
	copy(cp, offsets)
	return WallKickData{offsets: cp}, nil
}

// MustWallKickData is like NewWallKickData but panics on error. Meant for
// static rule tables.
func MustWallKickData(offsets ...WallKickOffset) WallKickData {
	wk, err := NewWallKickData(offsets...)
	if err != nil {
		panic(err)
	}
	return wk
}

// TestCount returns the number of candidates.
func (w WallKickData) TestCount() int { return len(w.offsets) }

// Offset returns the candidate at the given index. The index must be in
// [0, TestCount()).
func (w WallKickData) Offset(index int) (WallKickOffset, error) {
	if index < 0 || index >= len(w.offsets) {
		return WallKickOffset{}, fmt.Errorf("wall kick index %d out of range", index)
	}
	return w.offsets[index], nil
}

// Offsets returns all candidates in priority order. Callers must not
// modify the returned slice.
func (w WallKickData) Offsets() []WallKickOffset { return w.offsets }
