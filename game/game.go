// Package game implements the playable game state around the board and
// the search: the active piece, the hold slot, the next-piece queue, and
// move application with locking and row clears.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/search"
	"github.com/domino14/downstack/tiles"
)

// PreviewSize is how many upcoming pieces the queue exposes.
const PreviewSize = 5

var (
	errNilBoard   = errors.New("board cannot be nil")
	errNilRules   = errors.New("rotation system cannot be nil")
	ErrGameOver   = errors.New("game is over")
	ErrNoPiece    = errors.New("no active piece")
	ErrSpawnBlock = errors.New("spawn position is blocked")
)

// A GameState is one running game: a board, the active piece, the hold
// slot and its once-per-piece flag, the upcoming queue, and the running
// lines-cleared total.
type GameState struct {
	board   *board.Board
	rs      tiles.RotationSystem
	current *tiles.Piece

	held     *tiles.PieceType
	holdUsed bool

	bag   *Bag
	queue []tiles.PieceType

	linesCleared int
	gameOver     bool
}

// NewGameState creates a game over an empty hold slot and a freshly
// shuffled bag. The board is owned by the game from here on.
func NewGameState(b *board.Board, rs tiles.RotationSystem) (*GameState, error) {
	if b == nil {
		return nil, errNilBoard
	}
	if rs == nil {
		return nil, errNilRules
	}
	g := &GameState{
		board: b,
		rs:    rs,
		bag:   NewBag(),
		queue: make([]tiles.PieceType, 0, PreviewSize),
	}
	g.refillQueue()
	return g, nil
}

// Board returns the board. Mutating it while a search runs over a
// snapshot is fine; mutating it mid-search without a snapshot is not.
func (g *GameState) Board() *board.Board { return g.board }

// RotationSystem returns the active rule set.
func (g *GameState) RotationSystem() tiles.RotationSystem { return g.rs }

// CurrentPiece returns the active piece, or nil between spawns.
func (g *GameState) CurrentPiece() *tiles.Piece { return g.current }

// Held returns the held piece type, or false when the slot is empty.
func (g *GameState) Held() (tiles.PieceType, bool) {
	if g.held == nil {
		return 0, false
	}
	return *g.held, true
}

// NextQueue returns the upcoming piece types, soonest first.
func (g *GameState) NextQueue() []tiles.PieceType {
	out := make([]tiles.PieceType, len(g.queue))
	copy(out, g.queue)
	return out
}

// LinesCleared returns the running total of cleared rows.
func (g *GameState) LinesCleared() int { return g.linesCleared }

// GameOver reports whether a spawn has failed.
func (g *GameState) GameOver() bool { return g.gameOver }

// SpawnPiece makes the given type the active piece at its spawn state.
// A blocked spawn ends the game.
func (g *GameState) SpawnPiece(t tiles.PieceType) error {
	if g.gameOver {
		return ErrGameOver
	}
	st := g.rs.InitialState(t, g.board.Width(), g.board.Height())
	if !search.CanPlace(g.board, g.rs, st) {
		g.gameOver = true
		log.Debug().Str("piece", t.String()).Msg("spawn blocked, game over")
		return ErrSpawnBlock
	}
	p, err := tiles.NewPiece(st, g.rs)
	if err != nil {
		return err
	}
	g.current = p
	return nil
}

// SpawnNext spawns the head of the queue and refills the preview.
func (g *GameState) SpawnNext() (tiles.PieceType, error) {
	if g.gameOver {
		return 0, ErrGameOver
	}
	t := g.queue[0]
	if err := g.SpawnPiece(t); err != nil {
		return t, err
	}
	g.queue = g.queue[1:]
	g.refillQueue()
	return t, nil
}

// ApplyMove applies a single move to the active piece and reports whether
// it took effect. Rotation moves carry a wall-kick candidate index; an
// index beyond the table falls back to the unkicked rotation. An illegal
// outcome leaves the state untouched.
func (g *GameState) ApplyMove(mv move.Move) bool {
	if g.gameOver || g.current == nil {
		return false
	}
	if mv.Type() == move.Hold {
		return g.hold()
	}
	next, ok := search.ApplyMove(g.board, g.rs, g.current.State(), mv)
	if !ok {
		return false
	}
	g.current.SetState(next)
	return true
}

// LockPiece writes the active piece into the board, clears any full rows,
// and re-arms the hold slot. It returns the rows cleared by this lock.
func (g *GameState) LockPiece() (int, error) {
	if g.current == nil {
		return 0, ErrNoPiece
	}
	for _, cell := range g.current.AbsoluteFilledCells() {
		g.board.FillCell(cell.X, cell.Y)
	}
	cleared := g.board.ClearFilledRows()
	g.linesCleared += cleared
	g.holdUsed = false
	log.Debug().
		Str("piece", g.current.State().String()).
		Int("cleared", cleared).
		Int("total", g.linesCleared).
		Msg("piece locked")
	g.current = nil
	return cleared, nil
}

// hold stashes the active piece and brings out the previously held one,
// or the next queued piece if the slot was empty. One hold per piece; a
// blocked swap restores the previous state and reports failure.
func (g *GameState) hold() bool {
	if g.holdUsed || g.current == nil {
		return false
	}
	curType := g.current.State().Type
	prevHeld := g.held
	prevPiece := g.current

	incoming := g.queue[0]
	fromQueue := true
	if prevHeld != nil {
		incoming = *prevHeld
		fromQueue = false
	}

	g.held = &curType
	if err := g.SpawnPiece(incoming); err != nil {
		g.held = prevHeld
		g.current = prevPiece
		g.gameOver = false
		return false
	}
	if fromQueue {
		g.queue = g.queue[1:]
		g.refillQueue()
	}
	g.holdUsed = true
	return true
}

// Clone returns a deep copy with an independent board, piece, bag and
// rule set.
func (g *GameState) Clone() *GameState {
	cp := &GameState{
		board:        g.board.Copy(),
		rs:           g.rs.Clone(),
		bag:          g.bag.Copy(),
		queue:        make([]tiles.PieceType, len(g.queue)),
		holdUsed:     g.holdUsed,
		linesCleared: g.linesCleared,
		gameOver:     g.gameOver,
	}
	copy(cp.queue, g.queue)
	if g.held != nil {
		held := *g.held
		cp.held = &held
	}
	if g.current != nil {
		cp.current = g.current.Copy()
		// ignore: the cloned rotation system is never nil here
		_ = cp.current.SetRotationSystem(cp.rs)
	}
	return cp
}

// ToDisplayText renders the board with the active piece overlaid as '#'.
func (g *GameState) ToDisplayText() string {
	var str strings.Builder
	overlay := map[tiles.Position]bool{}
	if g.current != nil {
		for _, cell := range g.current.AbsoluteFilledCells() {
			overlay[cell] = true
		}
	}
	for y := g.board.Height() - 1; y >= 0; y-- {
		str.WriteString(fmt.Sprintf("%2d", y))
		for x := 0; x < g.board.Width(); x++ {
			switch {
			case overlay[tiles.Position{X: x, Y: y}]:
				str.WriteString("#")
			case g.board.IsFilled(x, y):
				str.WriteString("X")
			default:
				str.WriteString(".")
			}
		}
		str.WriteString("\n")
	}
	str.WriteString(fmt.Sprintf("lines: %d", g.linesCleared))
	if held, ok := g.Held(); ok {
		str.WriteString(fmt.Sprintf("  hold: %v", held))
	}
	str.WriteString(fmt.Sprintf("  next: %v\n", g.NextQueue()))
	return str.String()
}

func (g *GameState) refillQueue() {
	for len(g.queue) < PreviewSize {
		g.queue = append(g.queue, g.bag.Draw())
	}
}
