package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// presetBoards maps fixed presets to their board dimensions.
// Normal matches the classic 10x10 grid with five mines per color.
var presetBoards = map[DifficultyPreset]BoardConfig{
	DifficultyEasy:   {Size: 8, MinesPerColor: 3},
	DifficultyNormal: {Size: 10, MinesPerColor: 5},
	DifficultyHard:   {Size: 16, MinesPerColor: 13},
}

// Presets returns every preset in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// ParsePreset converts a user-supplied name to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// BoardForPreset returns the board dimensions of a fixed preset.
// The second result is false for custom and unknown presets.
func BoardForPreset(preset DifficultyPreset) (BoardConfig, bool) {
	b, ok := presetBoards[preset]
	return b, ok
}

// ApplyPreset overwrites the board dimensions with those of a fixed preset.
// Custom leaves the configured board untouched.
func ApplyPreset(cfg *SweeperConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if b, ok := BoardForPreset(preset); ok {
		cfg.Board = b
	}
}
