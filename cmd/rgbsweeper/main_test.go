package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
		wantErr  bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLogLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseLogLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("parseLogLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDefaultPresetID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	restore := func(size, mines int, cfg string) {
		flagSize, flagMines, flagConfig = size, mines, cfg
	}
	t.Cleanup(func() { restore(0, -1, "") })

	restore(0, -1, "")
	if got := defaultPresetID(); got != rgbsweeper.DefaultID {
		t.Errorf("defaultPresetID() = %q, expected %q", got, rgbsweeper.DefaultID)
	}

	restore(12, -1, "")
	if got := defaultPresetID(); got != "rgbsweeper_custom" {
		t.Errorf("defaultPresetID() with --size = %q, expected rgbsweeper_custom", got)
	}

	path := filepath.Join(t.TempDir(), "hard.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  preset: Hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	restore(0, -1, path)
	if got := defaultPresetID(); got != "rgbsweeper_hard" {
		t.Errorf("defaultPresetID() from config = %q, expected rgbsweeper_hard", got)
	}
}

func TestOpenLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	flagLogFile = "~/.rgbsweeper/test.log"
	t.Cleanup(func() { flagLogFile = "~/.rgbsweeper/rgbsweeper.log" })

	logger, closeLog := openLogFile()
	logger.Info("hello")
	closeLog()

	data, err := os.ReadFile(filepath.Join(home, ".rgbsweeper", "test.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
