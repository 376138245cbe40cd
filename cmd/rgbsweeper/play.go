package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgbsweeper/internal/config"
	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/platform/tui"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board preset",
	Long: `Start playing the specified board preset.

Without a preset, the difficulty from the config file is used. Passing
--size or --mines without a preset plays the custom board.

Controls:
  W/A/S/D, Arrows - Move the cursor
  Space           - Open a tile
  I / O / P       - Place/remove a RED / GREEN / BLUE flag
  H               - Help screen with the color mixing table
  C               - Cancel the game (confirm with Y, resume with N)
  R               - Restart (after the game ends)
  Q/Ctrl+C        - Quit

Examples:
  rgbsweeper play
  rgbsweeper play rgbsweeper_easy
  rgbsweeper play rgbsweeper_custom --size 20 --mines 30
  rgbsweeper play --seed 42
  rgbsweeper play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// defaultPresetID picks the preset to play when none is named.
func defaultPresetID() string {
	if flagSize > 0 || flagMines >= 0 {
		return rgbsweeper.IDForDifficulty(config.DifficultyCustom)
	}
	cfg, err := config.LoadSweeper(flagConfig)
	if err != nil {
		return rgbsweeper.DefaultID
	}
	preset, err := config.ParsePreset(string(cfg.Difficulty.Preset))
	if err != nil {
		return rgbsweeper.DefaultID
	}
	return rgbsweeper.IDForDifficulty(preset)
}

// checkPreset surfaces configuration errors before the alt screen opens.
func checkPreset(game registry.Game) error {
	sw, ok := game.(*rgbsweeper.Game)
	if !ok {
		return nil
	}
	if _, err := rgbsweeper.ResolveConfig(sw.Difficulty()); err != nil {
		return fmt.Errorf("invalid configuration for %s: %w", game.ID(), err)
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultPresetID()
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if preset exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rgbsweeper list' to see available presets.")
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if err := checkPreset(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogFile()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, logger, terminalConfig())

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
