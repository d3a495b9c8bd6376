// Package shell is the interactive console: set up boards, spawn and move
// pieces, run placement searches, and inspect the results.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/config"
	"github.com/domino14/downstack/game"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/rules"
	"github.com/domino14/downstack/search"
	"github.com/domino14/downstack/tiles"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	registry *rules.Registry
	g        *game.GameState

	lastLandings []search.LandingPosition
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdownstack>\033[0m ",
		HistoryFile:     "/tmp/downstack-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	registry := rules.NewRegistry()
	if rf := cfg.GetString(config.RulesFileKey); rf != "" {
		custom, err := rules.LoadCustomRotationSystem(rf)
		if err != nil {
			log.Error().Err(err).Str("file", rf).Msg("could not load rules file")
		} else {
			registry.Register(custom)
		}
	}
	return &ShellController{l: l, cfg: cfg, registry: registry}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewGame starts a fresh game with the configured dimensions and rule
// set. Called once at startup and by the newgame command.
func (sc *ShellController) NewGame(width, height int) error {
	b, err := board.NewBoard(width, height)
	if err != nil {
		return err
	}
	rs, err := sc.registry.Get(sc.cfg.GetString(config.RotationSystemKey))
	if err != nil {
		return err
	}
	g, err := game.NewGameState(b, rs)
	if err != nil {
		return err
	}
	sc.g = g
	sc.lastLandings = nil
	return nil
}

func (sc *ShellController) searchConfig() search.Config {
	return search.Config{
		AllowRotate180:   sc.cfg.GetBool(config.Allow180Key),
		AllowHardDrop:    sc.cfg.GetBool(config.AllowHardDropKey),
		AllowSoftDrop:    sc.cfg.GetBool(config.AllowSoftDropKey),
		Is20G:            sc.cfg.GetBool(config.Is20GKey),
		LastRotationOnly: sc.cfg.GetBool(config.LastRotationOnlyKey),
	}
}

func (sc *ShellController) requireGame() error {
	if sc.g == nil {
		return fmt.Errorf("no game in progress; try `newgame`")
	}
	return nil
}

func (sc *ShellController) requirePiece() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if sc.g.CurrentPiece() == nil {
		return fmt.Errorf("no active piece; try `spawn T` or `next`")
	}
	return nil
}

func parseMoveType(s string) (move.MoveType, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return move.Left, nil
	case "right", "r":
		return move.Right, nil
	case "down", "d":
		return move.Down, nil
	case "cw":
		return move.RotateClockwise, nil
	case "ccw":
		return move.RotateCounterClockwise, nil
	case "180":
		return move.Rotate180, nil
	case "hd", "harddrop":
		return move.HardDrop, nil
	case "hold":
		return move.Hold, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

func (sc *ShellController) cmdNewGame(args []string) error {
	width := sc.cfg.GetInt(config.BoardWidthKey)
	height := sc.cfg.GetInt(config.BoardHeightKey)
	var err error
	if len(args) >= 2 {
		if width, err = strconv.Atoi(args[0]); err != nil {
			return err
		}
		if height, err = strconv.Atoi(args[1]); err != nil {
			return err
		}
	}
	if err := sc.NewGame(width, height); err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("new %dx%d game under %s", width, height,
		sc.g.RotationSystem().Name()))
	return nil
}

func (sc *ShellController) cmdShow() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	sc.showMessage(sc.g.ToDisplayText())
	return nil
}

func (sc *ShellController) cmdSpawn(args []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("spawn needs a piece letter, e.g. `spawn T`")
	}
	t, err := tiles.ParsePieceType(args[0])
	if err != nil {
		return err
	}
	return sc.g.SpawnPiece(t)
}

func (sc *ShellController) cmdNext() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	t, err := sc.g.SpawnNext()
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("spawned %v", t))
	return nil
}

func (sc *ShellController) cmdMove(args []string) error {
	if err := sc.requirePiece(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("move needs a direction, e.g. `move left`")
	}
	mt, err := parseMoveType(args[0])
	if err != nil {
		return err
	}
	mv := move.NewMove(mt)
	if len(args) >= 2 {
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		if mv, err = move.NewKickMove(mt, idx); err != nil {
			return err
		}
	}
	if !sc.g.ApplyMove(mv) {
		sc.showMessage("move blocked")
		return nil
	}
	sc.showMessage(sc.g.CurrentPiece().State().String())
	return nil
}

func (sc *ShellController) cmdLock() error {
	if err := sc.requirePiece(); err != nil {
		return err
	}
	cleared, err := sc.g.LockPiece()
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("locked; %d line(s) cleared, %d total",
		cleared, sc.g.LinesCleared()))
	return nil
}

func (sc *ShellController) cmdCell(fill bool, args []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("need x and y")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	if fill {
		sc.g.Board().FillCell(x, y)
	} else {
		sc.g.Board().ClearCell(x, y)
	}
	return nil
}

func (sc *ShellController) cmdRows(args []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("rows needs row strings, bottom row last, e.g. `rows X..X XXXX`")
	}
	return sc.g.Board().SetFromRows(args)
}

func (sc *ShellController) cmdSearch(args []string) error {
	if err := sc.requirePiece(); err != nil {
		return err
	}
	maxDepth := sc.cfg.GetInt(config.MaxDepthKey)
	var err error
	if len(args) >= 1 {
		if maxDepth, err = strconv.Atoi(args[0]); err != nil {
			return err
		}
	}
	alg, err := search.NewAlgorithm(
		sc.cfg.GetString(config.SearchAlgorithmKey), sc.searchConfig())
	if err != nil {
		return err
	}
	snapshot := sc.g.Board().Copy()
	landings, err := alg.FindLandingPositions(snapshot, sc.g.CurrentPiece(), maxDepth)
	if err != nil {
		return err
	}
	sc.lastLandings = landings
	for i, lp := range landings {
		sc.showMessage(fmt.Sprintf("%3d: %v", i, lp))
	}
	sc.showMessage(fmt.Sprintf("%d landing position(s)", len(landings)))
	return nil
}

// cmdHistogram plots the distribution of path lengths from the last
// search.
func (sc *ShellController) cmdHistogram() error {
	if len(sc.lastLandings) == 0 {
		return fmt.Errorf("no landings; run `search` first")
	}
	lengths := lo.Map(sc.lastLandings, func(lp search.LandingPosition, _ int) float64 {
		return float64(len(lp.Path))
	})
	hist := histogram.Hist(10, lengths)
	return histogram.Fprint(sc.l.Stderr(), hist, histogram.Linear(40))
}

func (sc *ShellController) cmdPath(args []string) error {
	if err := sc.requirePiece(); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("path needs a landing index from the last search")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(sc.lastLandings) {
		return fmt.Errorf("landing index %d out of range", idx)
	}
	alg, err := search.NewAlgorithm(
		sc.cfg.GetString(config.SearchAlgorithmKey), sc.searchConfig())
	if err != nil {
		return err
	}
	target := sc.lastLandings[idx].State
	snapshot := sc.g.Board().Copy()
	path, err := alg.FindPath(snapshot, sc.g.CurrentPiece(), target,
		sc.cfg.GetInt(config.MaxDepthKey))
	if err != nil {
		return err
	}
	if len(path) == 0 && sc.g.CurrentPiece().State() != target {
		sc.showMessage("no path found")
		return nil
	}
	moves := lo.Map(path, func(m move.Move, _ int) string { return m.String() })
	sc.showMessage(strings.Join(moves, " "))
	return nil
}

func (sc *ShellController) cmdSet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set needs a key and a value")
	}
	sc.cfg.Set(args[0], args[1])
	sc.showMessage(fmt.Sprintf("%s = %s", args[0], args[1]))
	return nil
}

func usage(w io.Writer) {
	io.WriteString(w, `Commands:
  newgame [w h]     start a game (dimensions default to the config)
  show              print the board with the active piece
  spawn <piece>     spawn a specific piece (I J L O S T Z)
  next              spawn the next piece from the bag
  move <dir> [wk]   left right down cw ccw 180 hd hold; wk = kick index
  lock              lock the active piece and clear rows
  fill <x> <y>      occupy a cell
  clear <x> <y>     empty a cell
  rows <r1> <r2>..  set the board from row strings, bottom row last
  search [depth]    list reachable landing positions
  path <idx>        shortest move path to a landing from the last search
  hist              path-length histogram of the last search
  set <key> <val>   override a config value
  exit              leave the shell
`)
}

func (sc *ShellController) execLine(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "newgame":
		return sc.cmdNewGame(args)
	case "show":
		return sc.cmdShow()
	case "spawn":
		return sc.cmdSpawn(args)
	case "next":
		return sc.cmdNext()
	case "move":
		return sc.cmdMove(args)
	case "lock":
		return sc.cmdLock()
	case "fill":
		return sc.cmdCell(true, args)
	case "clear":
		return sc.cmdCell(false, args)
	case "rows":
		return sc.cmdRows(args)
	case "search":
		return sc.cmdSearch(args)
	case "path":
		return sc.cmdPath(args)
	case "hist", "histogram":
		return sc.cmdHistogram()
	case "set":
		return sc.cmdSet(args)
	case "help":
		usage(sc.l.Stderr())
		return nil
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil
	}
}

// Execute runs a single semicolon-separated command line and returns,
// for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, part := range strings.Split(line, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := sc.execLine(part); err != nil {
			sc.showError(err)
			return
		}
	}
}

// Cleanup releases the readline instance.
func (sc *ShellController) Cleanup() {
	sc.l.Close()
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.execLine(line); err != nil {
			sc.showError(err)
		}

	}
	log.Debug().Msgf("Exiting readline loop...")
}
