package rgbsweeper

import (
	"github.com/vovakirdan/rgbsweeper/internal/config"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
)

// Preset is a registered board configuration.
type Preset struct {
	ID         string
	Title      string
	Difficulty config.DifficultyPreset
}

// presets lists every registered preset in menu order.
var presets = []Preset{
	{ID: "rgbsweeper_easy", Title: "RGB Sweeper (Easy)", Difficulty: config.DifficultyEasy},
	{ID: "rgbsweeper", Title: "RGB Sweeper", Difficulty: config.DifficultyNormal},
	{ID: "rgbsweeper_hard", Title: "RGB Sweeper (Hard)", Difficulty: config.DifficultyHard},
	{ID: "rgbsweeper_custom", Title: "RGB Sweeper (Custom)", Difficulty: config.DifficultyCustom},
}

// DefaultID is the preset played when none is named.
const DefaultID = "rgbsweeper"

// Presets returns the registered presets in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// IDForDifficulty returns the registry ID of a difficulty preset.
func IDForDifficulty(d config.DifficultyPreset) string {
	for _, p := range presets {
		if p.Difficulty == d {
			return p.ID
		}
	}
	return DefaultID
}

// presetByID looks up a preset, falling back to the default one.
func presetByID(id string) Preset {
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return presets[1]
}

// Package-level settings applied on the next Reset, set via CLI flags.
var (
	configPath    string
	boardOverride = noOverride
)

var noOverride = config.BoardConfig{Size: 0, MinesPerColor: -1}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBoardOverride overrides the custom preset's board size and mines per
// color. Zero size or negative mines leave the configured value in place.
func SetBoardOverride(size, minesPerColor int) {
	boardOverride = config.BoardConfig{Size: size, MinesPerColor: minesPerColor}
}

// ResolveConfig loads the configuration and applies a preset to it.
// Fixed presets replace the board; custom keeps the configured board and
// applies any CLI override on top.
func ResolveConfig(d config.DifficultyPreset) (config.SweeperConfig, error) {
	cfg, err := config.LoadSweeper(configPath)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, d)
	if d == config.DifficultyCustom {
		if boardOverride.Size > 0 {
			cfg.Board.Size = boardOverride.Size
		}
		if boardOverride.MinesPerColor >= 0 {
			cfg.Board.MinesPerColor = boardOverride.MinesPerColor
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	for _, p := range presets {
		registry.Register(p.ID, func() registry.Game {
			return New(p.ID)
		})
	}
}
