// Package config provides YAML-based game configuration loading and
// difficulty presets for rgbsweeper.
package config

import (
	"errors"
	"fmt"
)

// MaxBoardSize is the largest side length accepted from configuration.
const MaxBoardSize = 64

// SweeperConfig contains all configuration for a game of rgbsweeper.
type SweeperConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions and mine density.
type BoardConfig struct {
	Size          int `yaml:"size"`
	MinesPerColor int `yaml:"mines_per_color"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	CursorStyle CursorStyle `yaml:"cursor_style"`
	ShowTimer   bool        `yaml:"show_timer"`
}

// DifficultyConfig selects the board preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// CursorStyle controls how the cursor cell is highlighted.
type CursorStyle string

const (
	CursorUnderline CursorStyle = "underline"
	CursorReverse   CursorStyle = "reverse"
)

// Validation errors.
var (
	ErrBoardSize     = errors.New("config: board size out of range")
	ErrMineCount     = errors.New("config: invalid mines per color")
	ErrCursorStyle   = errors.New("config: unknown cursor style")
	ErrUnknownPreset = errors.New("config: unknown difficulty preset")
)

// Validate checks that the configuration describes a playable board.
// Every mine must fit alongside the safe first cell, so 3×M must be
// smaller than N².
func (c SweeperConfig) Validate() error {
	b := c.Board
	if b.Size < 1 || b.Size > MaxBoardSize {
		return fmt.Errorf("%w: size %d not in 1..%d", ErrBoardSize, b.Size, MaxBoardSize)
	}
	if b.MinesPerColor < 0 {
		return fmt.Errorf("%w: %d is negative", ErrMineCount, b.MinesPerColor)
	}
	if 3*b.MinesPerColor >= b.Size*b.Size {
		return fmt.Errorf("%w: %d per color does not fit a %dx%d board",
			ErrMineCount, b.MinesPerColor, b.Size, b.Size)
	}

	switch c.Display.CursorStyle {
	case "", CursorUnderline, CursorReverse:
	default:
		return fmt.Errorf("%w: %q", ErrCursorStyle, c.Display.CursorStyle)
	}

	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}
