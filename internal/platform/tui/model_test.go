package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// newTestModel starts an easy game backed by a temporary store, isolated
// from any config files on the machine.
func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	rgbsweeper.SetConfigPath("")

	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game, err := registry.Create("rgbsweeper_easy")
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}

	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 10, Seed: 7})
	m.Init()
	return m, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestModelCancelSavesAbandonedResult(t *testing.T) {
	m, store := newTestModel(t)

	m = send(t, m, spaceKey, runeKey('c'), runeKey('y'))

	if !m.GameState().GameOver || m.GameState().Won {
		t.Fatalf("expected an abandoned game, got %+v", m.GameState())
	}

	results, err := store.RecentResults("rgbsweeper_easy", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(results))
	}
	if r := results[0]; r.Outcome != storage.OutcomeAbandoned || r.Size != 8 || r.MinesPerColor != 3 {
		t.Errorf("unexpected result: %+v", r)
	}

	// Further keys must not save a second result
	m = send(t, m, runeKey('x'), spaceKey)
	results, _ = store.RecentResults("rgbsweeper_easy", 10)
	if len(results) != 1 {
		t.Errorf("expected result to be saved once, got %d", len(results))
	}
}

func TestModelCancelBeforeFirstRevealSavesNothing(t *testing.T) {
	m, store := newTestModel(t)

	m = send(t, m, runeKey('c'), runeKey('y'))
	if !m.GameState().GameOver {
		t.Fatal("expected the game to be over")
	}

	results, _ := store.RecentResults("", 10)
	if len(results) != 0 {
		t.Errorf("expected no saved results, got %d", len(results))
	}
}

func TestModelLossIsSaved(t *testing.T) {
	m, store := newTestModel(t)
	m = send(t, m, spaceKey)

	sw := m.game.(*rgbsweeper.Game)
	var mineX, mineY int
	for _, i := range sw.Board().MineIndices() {
		mineX, mineY = sw.Board().Coords(i)
		break
	}

	// The cursor is at the origin after the first reveal
	for range mineX {
		m = send(t, m, runeKey('d'))
	}
	for range mineY {
		m = send(t, m, runeKey('s'))
	}
	m = send(t, m, spaceKey)

	if sw.Phase() != rgbsweeper.PhaseLost {
		t.Fatalf("expected a lost game, got %s", sw.Phase())
	}

	results, _ := store.RecentResults("rgbsweeper_easy", 10)
	if len(results) != 1 || results[0].Outcome != storage.OutcomeLost {
		t.Errorf("expected one lost result, got %+v", results)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, spaceKey, runeKey('c'), runeKey('y'))

	m = send(t, m, runeKey('r'))

	if m.GameState().GameOver || m.GameState().Started {
		t.Errorf("expected a fresh game after restart, got %+v", m.GameState())
	}
	if m.resultSaved {
		t.Error("restart should allow the next result to be saved")
	}
}

func TestModelRestartIgnoredMidGame(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, spaceKey, runeKey('r'))

	if !m.GameState().Started {
		t.Error("r during a game should not reset the board")
	}
}

func TestModelBackToMenuOnlyInSession(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runeKey('c'), runeKey('y'), tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone game should not return to a menu")
	}

	m, _ = newTestModel(t)
	m.inSession = true

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc during a game should not leave it")
	}

	m = send(t, m, runeKey('c'), runeKey('y'), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runeKey('d'), spaceKey)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	sw := m.game.(*rgbsweeper.Game)
	if x, _ := sw.Cursor(); x != 1 {
		t.Errorf("cursor x = %d after resize, expected 1", x)
	}
	if !sw.Board().Generated() {
		t.Error("resize should not discard the board")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 50-helpLines {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 50-helpLines)
	}
}

func TestResultFor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	game, _ := registry.Create("rgbsweeper")
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 1})

	if _, ok := resultFor(game, game.State()); ok {
		t.Error("a game in progress has no result")
	}

	if _, ok := resultFor(stubGame{}, core.GameState{GameOver: true, Started: true}); ok {
		t.Error("unknown games have no result")
	}
}

// stubGame is a registry.Game that is not a board game.
type stubGame struct{}

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }
