package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/rules"
	"github.com/domino14/downstack/tiles"
)

func newGame(t *testing.T) *GameState {
	t.Helper()
	b, err := board.NewBoard(10, 40)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGameState(b, rules.NewSRS())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGameStateValidation(t *testing.T) {
	is := is.New(t)
	b, err := board.NewBoard(10, 40)
	is.NoErr(err)
	_, err = NewGameState(nil, rules.NewSRS())
	is.True(err != nil)
	_, err = NewGameState(b, nil)
	is.True(err != nil)
}

func TestBagDealsSevenOfEach(t *testing.T) {
	is := is.New(t)
	bag := NewBag()
	for batch := 0; batch < 3; batch++ {
		counts := map[tiles.PieceType]int{}
		for i := 0; i < tiles.NumPieceTypes; i++ {
			counts[bag.Draw()]++
		}
		for _, pt := range tiles.AllPieceTypes {
			is.Equal(counts[pt], 1)
		}
	}
}

func TestSpawnAndQueue(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	is.Equal(len(g.NextQueue()), PreviewSize)

	upcoming := g.NextQueue()[0]
	spawned, err := g.SpawnNext()
	is.NoErr(err)
	is.Equal(spawned, upcoming)
	is.True(g.CurrentPiece() != nil)
	is.Equal(g.CurrentPiece().State().Type, spawned)
	is.Equal(len(g.NextQueue()), PreviewSize)
}

func TestApplyMoveAndLock(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	is.NoErr(g.SpawnPiece(tiles.PieceO))

	// Moving the piece around.
	is.True(g.ApplyMove(move.NewMove(move.Left)))
	is.True(g.ApplyMove(move.NewMove(move.Right)))
	is.True(g.ApplyMove(move.NewMove(move.HardDrop)))
	st := g.CurrentPiece().State()
	// O occupies box rows 1 and 2, so it rests with its origin at -1.
	is.Equal(st.Position.Y, -1)

	// Down at the floor is blocked and leaves the state alone.
	is.True(!g.ApplyMove(move.NewMove(move.Down)))
	is.Equal(g.CurrentPiece().State(), st)

	cleared, err := g.LockPiece()
	is.NoErr(err)
	is.Equal(cleared, 0)
	is.True(g.CurrentPiece() == nil)
	is.Equal(g.Board().FilledCellCount(), 4)

	_, err = g.LockPiece()
	is.Equal(err, ErrNoPiece)
}

func TestLockClearsRows(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	// Bottom row filled except where the O piece will land.
	is.NoErr(g.Board().SetFromRows([]string{
		"XXXX..XXXX",
		"XXXX..XXXX",
	}))
	is.NoErr(g.SpawnPiece(tiles.PieceO))
	// O occupies box columns 1 and 2; spawn origin x=3 puts it over the
	// gap already.
	is.True(g.ApplyMove(move.NewMove(move.HardDrop)))
	cleared, err := g.LockPiece()
	is.NoErr(err)
	is.Equal(cleared, 2)
	is.Equal(g.LinesCleared(), 2)
	is.True(g.Board().IsEmpty())
}

func TestHoldSemantics(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	is.NoErr(g.SpawnPiece(tiles.PieceT))

	// First hold stashes T and spawns from the queue.
	upcoming := g.NextQueue()[0]
	is.True(g.ApplyMove(move.NewMove(move.Hold)))
	held, ok := g.Held()
	is.True(ok)
	is.Equal(held, tiles.PieceT)
	is.Equal(g.CurrentPiece().State().Type, upcoming)

	// Only one hold per piece.
	is.True(!g.ApplyMove(move.NewMove(move.Hold)))

	// After locking, the hold re-arms and swaps with the held piece.
	_, err := g.LockPiece()
	is.NoErr(err)
	is.NoErr(g.SpawnPiece(tiles.PieceZ))
	is.True(g.ApplyMove(move.NewMove(move.Hold)))
	held, ok = g.Held()
	is.True(ok)
	is.Equal(held, tiles.PieceZ)
	is.Equal(g.CurrentPiece().State().Type, tiles.PieceT)
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	st := g.RotationSystem().InitialState(tiles.PieceT, 10, 40)
	g.Board().FillCell(st.Position.X+2, st.Position.Y+1)

	err := g.SpawnPiece(tiles.PieceT)
	is.Equal(err, ErrSpawnBlock)
	is.True(g.GameOver())

	_, err = g.SpawnNext()
	is.Equal(err, ErrGameOver)
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	is.NoErr(g.SpawnPiece(tiles.PieceL))
	g.Board().FillCell(0, 0)

	cp := g.Clone()
	is.Equal(cp.LinesCleared(), g.LinesCleared())
	is.Equal(cp.CurrentPiece().State(), g.CurrentPiece().State())

	cp.Board().FillCell(9, 0)
	is.True(!g.Board().IsFilled(9, 0))

	is.True(cp.ApplyMove(move.NewMove(move.Left)))
	is.True(cp.CurrentPiece().State() != g.CurrentPiece().State())
}

func TestApplyMoveKickFallback(t *testing.T) {
	is := is.New(t)
	g := newGame(t)
	is.NoErr(g.SpawnPiece(tiles.PieceT))
	before := g.CurrentPiece().State()

	// A kick index past the table applies the raw rotation.
	mv, err := move.NewKickMove(move.RotateClockwise, 42)
	is.NoErr(err)
	is.True(g.ApplyMove(mv))
	st := g.CurrentPiece().State()
	is.Equal(st.Rotation, tiles.R90)
	is.Equal(st.Position, before.Position)
}
