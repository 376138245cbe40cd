package config

import (
	_ "embed"
)

//go:embed defaults/rgbsweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the built-in configuration used when no
// YAML file can be read.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Board: BoardConfig{
			Size:          10,
			MinesPerColor: 5,
		},
		Display: DisplayConfig{
			CursorStyle: CursorUnderline,
			ShowTimer:   true,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
