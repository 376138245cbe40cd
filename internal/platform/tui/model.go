package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

// helpLines is the number of rows reserved under the game for the key help.
const helpLines = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can adapt to a new screen size
// without losing their state.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
// Input is applied as soon as a key arrives; the tick only refreshes the
// timer on screen.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	inSession   bool // Back after game over returns to the menu
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output; a nil store disables persistence.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	sc := m.screenConfig()
	m.screen = core.NewScreen(sc.ScreenW, sc.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// screenConfig returns the runtime config handed to the game, with the
// help rows taken off the terminal height.
func (m Model) screenConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-helpLines, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.screenConfig())
	m.logStart()

	// Start the redraw loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		switch action {
		case core.ActionRestart:
			m.restart()
			return m, nil
		case core.ActionBack:
			if m.inSession {
				m.backToMenu = true
			}
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m.gameState = result.State
	if m.gameState.GameOver && !m.resultSaved {
		m.resultSaved = true
		m.recordResult()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	sc := m.screenConfig()
	m.screen.Resize(sc.ScreenW, sc.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(sc.ScreenW, sc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(sc)
	}

	return m, nil
}

// handleTick keeps the elapsed time on screen current.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.State()
	return m, tickCmd(m.config.TickRate)
}

// restart starts a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.screenConfig())
	m.gameState = m.game.State()
	m.resultSaved = false
	m.logStart()
}

// logStart logs the start of a game.
func (m Model) logStart() {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	if sw, ok := m.game.(*rgbsweeper.Game); ok {
		if err := sw.ConfigError(); err != nil {
			m.logger.Warn("invalid configuration, using defaults", "error", err)
		}
	}
}

// resultFor builds the stored result for a finished game.
// Returns false if there is nothing to record.
func resultFor(game registry.Game, state core.GameState) (storage.Result, bool) {
	sw, ok := game.(*rgbsweeper.Game)
	if !ok || !state.GameOver || !state.Started {
		return storage.Result{}, false
	}

	var outcome storage.Outcome
	switch sw.Phase() {
	case rgbsweeper.PhaseWon:
		outcome = storage.OutcomeWon
	case rgbsweeper.PhaseLost:
		outcome = storage.OutcomeLost
	case rgbsweeper.PhaseAbandoned:
		outcome = storage.OutcomeAbandoned
	default:
		return storage.Result{}, false
	}

	cfg := sw.Config()
	return storage.Result{
		GameID:        sw.ID(),
		Size:          cfg.Board.Size,
		MinesPerColor: cfg.Board.MinesPerColor,
		Outcome:       outcome,
		Duration:      state.Elapsed,
	}, true
}

// recordResult logs the end of a game and saves it to the store.
func (m Model) recordResult() {
	result, ok := resultFor(m.game, m.gameState)
	if !ok {
		m.logger.Info("game ended before the first reveal", "game", m.game.ID())
		return
	}

	m.logger.Info("game finished",
		"game", result.GameID,
		"outcome", result.Outcome,
		"elapsed", result.Duration,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(result); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".rgbsweeper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last input.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
