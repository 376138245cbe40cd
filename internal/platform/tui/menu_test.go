package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

func newTestMenu(t *testing.T, store *storage.Store) MenuModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	rgbsweeper.SetConfigPath("")
	return NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
}

func pressMenu(m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuStartsOnNormalBoard(t *testing.T) {
	m := newTestMenu(t, nil)

	m, cmd := pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select a board and quit the menu")
	}
	if m.Selected().GameID != rgbsweeper.DefaultID {
		t.Errorf("selected %q, expected %q", m.Selected().GameID, rgbsweeper.DefaultID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := newTestMenu(t, nil)

	m, _ = pressMenu(m, runeKey('k'), runeKey('k'), runeKey('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving past the top, expected 0", m.cursor)
	}

	for range len(m.items) + 2 {
		m, _ = pressMenu(m, runeKey('j'))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after moving past the bottom, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := newTestMenu(t, nil)

	sb, _ := pressMenu(m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() || sb.IsQuitting() {
		t.Error("tab should open the scoreboard")
	}

	q, _ := pressMenu(m, runeKey('q'))
	if !q.IsQuitting() {
		t.Error("q should quit")
	}
	if q.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := newTestMenu(t, nil)

	m, _ = pressMenu(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, expected 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuShowsBestTime(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveResult(storage.Result{
		GameID:        rgbsweeper.DefaultID,
		Size:          10,
		MinesPerColor: 5,
		Outcome:       storage.OutcomeWon,
		Duration:      83 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	m := newTestMenu(t, store)
	if got := m.items[1].Best; got != "01:23" {
		t.Errorf("best time = %q, expected 01:23", got)
	}
	if m.items[0].Best != "" {
		t.Errorf("expected no best time for easy, got %q", m.items[0].Best)
	}
	if !strings.Contains(m.View(), "best 01:23") {
		t.Error("view should show the best time")
	}
}
