// Package rgbsweeper is the playable session around the mines board: cursor,
// lazy board generation, colored flags, help and quit prompts, elapsed time
// and rendering into a core.Screen.
package rgbsweeper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rgbsweeper/internal/config"
	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/mines"
)

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhaseUnstarted  Phase = "unstarted"
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
	PhaseAbandoned  Phase = "abandoned"
)

// Over reports whether the phase is terminal.
func (p Phase) Over() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseAbandoned
}

// Game implements registry.Game for one board preset.
type Game struct {
	preset Preset
	cfg    config.SweeperConfig
	cfgErr error // Set when the configuration was rejected and defaults were used

	rng   *rand.Rand
	board *mines.Board
	tick  uint64

	cursorX, cursorY int
	phase            Phase
	showHelp         bool
	confirmCancel    bool
	hitX, hitY       int // Mine that ended the game, -1 if none

	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the preset with the given registry ID.
func New(id string) *Game {
	return &Game{
		preset: presetByID(id),
		now:    time.Now,
		hitX:   -1,
		hitY:   -1,
	}
}

// SetClock replaces the time source used for elapsed time.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Difficulty returns the preset the game was created for.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset.Difficulty
}

// Config returns the configuration the current board was built from.
func (g *Game) Config() config.SweeperConfig {
	return g.cfg
}

// ConfigError returns the error that forced a fallback to defaults on the
// last Reset, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.loadConfig()

	board, err := mines.NewBoard(g.cfg.Board.Size, g.cfg.Board.MinesPerColor)
	if err != nil {
		// Validated configs never get here
		g.cfgErr = err
		g.cfg = config.DefaultSweeperConfig()
		board, _ = mines.NewBoard(g.cfg.Board.Size, g.cfg.Board.MinesPerColor)
	}
	g.board = board

	g.cursorX, g.cursorY = 0, 0
	g.phase = PhaseUnstarted
	g.showHelp = false
	g.confirmCancel = false
	g.hitX, g.hitY = -1, -1
	g.startedAt = time.Time{}
	g.endedAt = time.Time{}

	g.checkScreenSize()
}

// loadConfig resolves the preset, falling back to the built-in defaults
// with the preset's board when the configuration is unusable.
func (g *Game) loadConfig() {
	cfg, err := ResolveConfig(g.preset.Difficulty)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultSweeperConfig()
		config.ApplyPreset(&cfg, g.preset.Difficulty)
	}
	g.cfg = cfg
}

// checkScreenSize checks if the screen is large enough for the grid.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	// Any key closes the help screen
	if g.showHelp {
		g.showHelp = false
		return core.StepResult{State: g.State(), Changed: true}
	}

	// Restart is handled by the platform
	if g.phase.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHelp) {
		g.showHelp = true
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.confirmCancel {
		switch {
		case in.Has(core.ActionConfirm):
			g.confirmCancel = false
			g.finish(PhaseAbandoned)
		case in.Has(core.ActionBack):
			g.confirmCancel = false
		default:
			return core.StepResult{State: g.State()}
		}
		return core.StepResult{State: g.State(), Changed: true}
	}

	n := g.board.Size()
	changed := true
	switch {
	case in.Has(core.ActionUp):
		g.cursorY = core.Wrap(g.cursorY-1, n)
	case in.Has(core.ActionDown):
		g.cursorY = core.Wrap(g.cursorY+1, n)
	case in.Has(core.ActionLeft):
		g.cursorX = core.Wrap(g.cursorX-1, n)
	case in.Has(core.ActionRight):
		g.cursorX = core.Wrap(g.cursorX+1, n)
	case in.Has(core.ActionOpen):
		g.open()
	case in.Has(core.ActionFlagRed):
		g.flag(mines.ColorRed)
	case in.Has(core.ActionFlagGreen):
		g.flag(mines.ColorGreen)
	case in.Has(core.ActionFlagBlue):
		g.flag(mines.ColorBlue)
	case in.Has(core.ActionCancel):
		g.confirmCancel = true
	default:
		changed = false
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// open reveals the cell under the cursor, generating the board first if
// this is the first reveal.
func (g *Game) open() {
	if !g.board.Generated() {
		g.generate()
	}

	if g.board.OpenCell(g.cursorX, g.cursorY) == mines.OutcomeMine {
		g.hitX, g.hitY = g.cursorX, g.cursorY
		g.board.ResolveLoss()
		g.finish(PhaseLost)
		return
	}
	g.checkWin()
}

// generate places the mines around the cursor. Flags planted before the
// first reveal are carried over onto the generated board.
func (g *Game) generate() {
	type flag struct {
		x, y  int
		color mines.Color
	}
	var planted []flag
	for i, c := range g.board.Cells() {
		if c.Flagged {
			x, y := g.board.Coords(i)
			planted = append(planted, flag{x, y, c.FlagColor})
		}
	}

	g.board.Generate(g.rng, g.cursorX, g.cursorY)
	for _, f := range planted {
		g.board.SetFlag(f.x, f.y, f.color)
	}

	g.phase = PhaseInProgress
	g.startedAt = g.now()
}

// flag plants, removes or recolors a flag under the cursor.
func (g *Game) flag(color mines.Color) {
	g.board.SetFlag(g.cursorX, g.cursorY, color)
	if g.board.Generated() {
		g.checkWin()
	}
}

// checkWin ends the game if the board is solved.
func (g *Game) checkWin() {
	if g.board.IsWon() {
		g.board.ResolveWin()
		g.finish(PhaseWon)
	}
}

// finish moves to a terminal phase and stops the clock.
func (g *Game) finish(p Phase) {
	g.phase = p
	g.endedAt = g.now()
}

// Elapsed returns the time since the first reveal, frozen once the game ends.
func (g *Game) Elapsed() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	if !g.endedAt.IsZero() {
		return g.endedAt.Sub(g.startedAt)
	}
	return g.now().Sub(g.startedAt)
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// Board returns the game's board. Callers must not mutate it.
func (g *Game) Board() *mines.Board {
	return g.board
}

// Cursor returns the cursor position.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}

// openedCells returns how many safe cells the player has uncovered.
func (g *Game) openedCells() int {
	if !g.board.Generated() {
		return 0
	}
	n := g.board.Size()
	return n*n - g.board.MineTotal() - g.board.RemainingSafeCells()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.openedCells(),
		GameOver: g.phase.Over(),
		Won:      g.phase == PhaseWon,
		Started:  g.board.Generated(),
		Elapsed:  g.Elapsed(),
	}
}
