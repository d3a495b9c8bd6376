package search_test

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/rules"
	"github.com/domino14/downstack/search"
	"github.com/domino14/downstack/tiles"
)

func spawnPiece(t *testing.T, pt tiles.PieceType) *tiles.Piece {
	t.Helper()
	srs := rules.NewSRS()
	p, err := tiles.NewPiece(srs.InitialState(pt, 10, 40), srs)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func landingKeys(landings []search.LandingPosition) []string {
	keys := make([]string, len(landings))
	for i, lp := range landings {
		keys[i] = lp.State.String()
	}
	sort.Strings(keys)
	return keys
}

func TestFindLandingPositionsFlatFloor(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	p := spawnPiece(t, tiles.PieceT)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.True(len(landings) > 0)

	srs := p.RotationSystem()
	for _, lp := range landings {
		// Every landing is a legal resting placement.
		is.True(search.IsAtRest(b, srs, lp.State))
		// The search reports LinesCleared as zero; locking fills it in.
		is.Equal(lp.LinesCleared, 0)
		is.True(lp.Valid)
	}
}

func TestLandingPathsReplay(t *testing.T) {
	is := is.New(t)
	b := newBoard(t,
		"X........X",
		"XX......XX",
		"XXX....XXX")
	p := spawnPiece(t, tiles.PieceJ)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.True(len(landings) > 0)

	srs := p.RotationSystem()
	for _, lp := range landings {
		st := p.State()
		for _, mv := range lp.Path {
			next, ok := search.ApplyMove(b, srs, st, mv)
			is.True(ok)
			st = next
		}
		is.Equal(st, lp.State)
	}
}

func TestFindLandingPositionsDeterministic(t *testing.T) {
	is := is.New(t)
	b := newBoard(t,
		"....XX....",
		"XXXX..XXXX")
	p := spawnPiece(t, tiles.PieceS)

	ps := search.NewPathSearch(search.DefaultConfig())
	first, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	second, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.Equal(landingKeys(first), landingKeys(second))
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	is := is.New(t)
	b := newBoard(t,
		"X.........",
		"XXX....XXX")
	before := b.Hash()
	p := spawnPiece(t, tiles.PieceL)

	ps := search.NewPathSearch(search.DefaultConfig())
	_, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.Equal(b.Hash(), before)
}

func TestMaxDepthGatesExpansionNotEmission(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	srs := rules.NewSRS()

	// Start the piece already at rest on the floor.
	p, err := tiles.NewPiece(tiles.PieceState{
		Type:     tiles.PieceT,
		Position: tiles.Position{X: 3, Y: -1},
	}, srs)
	is.NoErr(err)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 1)
	is.NoErr(err)

	// The start state is a landing with an empty path, and states
	// reached at exactly maxDepth moves are still examined, just not
	// expanded further.
	sawRoot, sawDepthOne := false, false
	for _, lp := range landings {
		is.True(len(lp.Path) <= 1)
		if len(lp.Path) == 0 {
			is.Equal(lp.State, p.State())
			sawRoot = true
		} else {
			sawDepthOne = true
		}
	}
	is.True(sawRoot)
	is.True(sawDepthOne)
}

func TestMaxDepthZeroIsUnlimited(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	p := spawnPiece(t, tiles.PieceT)

	ps := search.NewPathSearch(search.DefaultConfig())
	unlimited, err := ps.FindLandingPositions(b, p, 0)
	is.NoErr(err)
	is.True(len(unlimited) > 0)

	// Deep enough to exhaust the reachable states on an empty board.
	deep, err := ps.FindLandingPositions(b, p, 100)
	is.NoErr(err)
	is.Equal(landingKeys(unlimited), landingKeys(deep))
}

func TestFindPathShortest(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	p := spawnPiece(t, tiles.PieceT)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.True(len(landings) > 0)

	for _, lp := range landings {
		path, err := ps.FindPath(b, p, lp.State, 30)
		is.NoErr(err)
		// Both are breadth-first, so the standalone path can never be
		// longer than the one recorded with the landing.
		is.True(len(path) <= len(lp.Path))
		is.True(len(path) > 0)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	p := spawnPiece(t, tiles.PieceT)

	ps := search.NewPathSearch(search.DefaultConfig())
	// A state inside the floor can never be reached.
	target := tiles.PieceState{Type: tiles.PieceT, Position: tiles.Position{X: 3, Y: -4}}
	path, err := ps.FindPath(b, p, target, 30)
	is.NoErr(err)
	is.Equal(len(path), 0)
}

func TestLastRotationOnly(t *testing.T) {
	is := is.New(t)
	b := newBoard(t,
		"XXXX...XXX",
		"XXXX..XXXX")
	p := spawnPiece(t, tiles.PieceT)

	cfg := search.DefaultConfig()
	cfg.LastRotationOnly = true
	ps := search.NewPathSearch(cfg)
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	for _, lp := range landings {
		last, ok := lp.LastMove()
		is.True(ok)
		is.True(last.IsRotation())
	}
}

func TestIs20GLandingsAreAllResting(t *testing.T) {
	is := is.New(t)
	b := newBoard(t,
		"XX......XX",
		"XXX....XXX")
	p := spawnPiece(t, tiles.PieceZ)

	cfg := search.DefaultConfig()
	cfg.Is20G = true
	ps := search.NewPathSearch(cfg)
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.True(len(landings) > 0)
	srs := p.RotationSystem()
	for _, lp := range landings {
		is.True(search.IsAtRest(b, srs, lp.State))
	}
}

func TestBlockedStartReturnsNothing(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	srs := rules.NewSRS()
	// Overlap the spawn cells.
	st := srs.InitialState(tiles.PieceT, 10, 40)
	b.FillCell(st.Position.X+2, st.Position.Y+1)
	p, err := tiles.NewPiece(st, srs)
	is.NoErr(err)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	is.Equal(len(landings), 0)
}

func TestWallKickIndexRecordedInPath(t *testing.T) {
	is := is.New(t)
	b := newBoard(t)
	p := spawnPiece(t, tiles.PieceI)

	ps := search.NewPathSearch(search.DefaultConfig())
	landings, err := ps.FindLandingPositions(b, p, 30)
	is.NoErr(err)
	for _, lp := range landings {
		for _, mv := range lp.Path {
			if mv.IsRotation() {
				is.True(mv.WallKickIndex() >= 0)
			} else {
				is.Equal(mv.WallKickIndex(), move.NoWallKick)
			}
		}
	}
}

func TestNewAlgorithm(t *testing.T) {
	is := is.New(t)
	for _, name := range []string{"path", "pathsearch", "tspin", "tspinsearch"} {
		alg, err := search.NewAlgorithm(name, search.DefaultConfig())
		is.NoErr(err)
		is.True(alg != nil)
	}
	_, err := search.NewAlgorithm("dijkstra", search.DefaultConfig())
	is.True(err != nil)
}
