package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points the home and working directories at empty temp dirs so
// the search order never picks up a developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadSweeperEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadSweeper("")
	if err != nil {
		t.Fatalf("LoadSweeper failed: %v", err)
	}
	if cfg != DefaultSweeperConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSweeperConfig())
	}
}

func TestLoadSweeperCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
board:
  size: 12
  mines_per_color: 7
display:
  cursor_style: reverse
`)

	cfg, err := LoadSweeper(path)
	if err != nil {
		t.Fatalf("LoadSweeper failed: %v", err)
	}
	if cfg.Board.Size != 12 || cfg.Board.MinesPerColor != 7 {
		t.Errorf("board = %+v, expected 12/7", cfg.Board)
	}
	if cfg.Display.CursorStyle != CursorReverse {
		t.Errorf("cursor style = %q, expected reverse", cfg.Display.CursorStyle)
	}
	// Missing keys keep their defaults.
	if !cfg.Display.ShowTimer {
		t.Error("show_timer should default to true")
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		t.Errorf("preset = %q, expected normal", cfg.Difficulty.Preset)
	}
}

func TestLoadSweeperCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadSweeper(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [not, a, map")
	if _, err := LoadSweeper(bad); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadSweeperSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", ConfigFile), "board:\n  size: 9\n  mines_per_color: 2\n")
	cfg, _ := LoadSweeper("")
	if cfg.Board.Size != 9 {
		t.Errorf("local config not used, size = %d", cfg.Board.Size)
	}

	writeFile(t, filepath.Join(home, ".rgbsweeper", "configs", ConfigFile), "board:\n  size: 11\n  mines_per_color: 2\n")
	cfg, _ = LoadSweeper("")
	if cfg.Board.Size != 11 {
		t.Errorf("user config should win over local config, size = %d", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SweeperConfig)
		wantErr error
	}{
		{"default", func(c *SweeperConfig) {}, nil},
		{"single cell no mines", func(c *SweeperConfig) { c.Board = BoardConfig{Size: 1} }, nil},
		{"zero size", func(c *SweeperConfig) { c.Board.Size = 0 }, ErrBoardSize},
		{"too large", func(c *SweeperConfig) { c.Board.Size = MaxBoardSize + 1 }, ErrBoardSize},
		{"negative mines", func(c *SweeperConfig) { c.Board.MinesPerColor = -1 }, ErrMineCount},
		{"mines fill board", func(c *SweeperConfig) { c.Board = BoardConfig{Size: 3, MinesPerColor: 3} }, ErrMineCount},
		{"just fits", func(c *SweeperConfig) { c.Board = BoardConfig{Size: 4, MinesPerColor: 5} }, nil},
		{"bad cursor", func(c *SweeperConfig) { c.Display.CursorStyle = "blink" }, ErrCursorStyle},
		{"bad preset", func(c *SweeperConfig) { c.Difficulty.Preset = "insane" }, ErrUnknownPreset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSweeperConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected BoardConfig
	}{
		{DifficultyEasy, BoardConfig{Size: 8, MinesPerColor: 3}},
		{DifficultyNormal, BoardConfig{Size: 10, MinesPerColor: 5}},
		{DifficultyHard, BoardConfig{Size: 16, MinesPerColor: 13}},
		{DifficultyCustom, BoardConfig{Size: 7, MinesPerColor: 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSweeperConfig()
			cfg.Board = BoardConfig{Size: 7, MinesPerColor: 1}
			ApplyPreset(&cfg, tc.preset)
			if cfg.Board != tc.expected {
				t.Errorf("board = %+v, expected %+v", cfg.Board, tc.expected)
			}
			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("preset = %q, expected %q", cfg.Difficulty.Preset, tc.preset)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset board should validate: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(" " + string(p) + " ")
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("HARD"); err != nil {
		t.Errorf("ParsePreset should be case-insensitive: %v", err)
	}
	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(fixed) = %v, expected ErrUnknownPreset", err)
	}
}
