// rgbsweeper is a terminal Minesweeper with red, green and blue mines.
//
// Usage:
//
//	rgbsweeper list              - List board presets
//	rgbsweeper play [preset]     - Play a preset (default: rgbsweeper)
//	rgbsweeper menu              - Pick presets interactively
//	rgbsweeper serve             - Start SSH server for remote play
//	rgbsweeper scores [preset]   - Show best times and stats
//
// Global flags:
//
//	--fps <rate>        - Screen refresh rate (default: 10)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.rgbsweeper/results.db)
//	--config <path>     - Custom config YAML
//	--size, --mines     - Board for the custom preset
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log file used while a game is on screen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSize     int
	flagMines    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rgbsweeper",
	Short: "RGB Sweeper - Minesweeper with colored mines in your terminal",
	Long: `RGB Sweeper is Minesweeper with three kinds of mines: red, green and blue.
Numbers are colored by the mix of the mines around them, and every mine
has to be flagged with its own color to clear the board.

Available commands:
  list     - Show all board presets
  play     - Play a preset directly
  menu     - Interactive preset picker
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  rgbsweeper list
  rgbsweeper play
  rgbsweeper play rgbsweeper_hard
  rgbsweeper play rgbsweeper_custom --size 12 --mines 8
  rgbsweeper menu
  rgbsweeper serve --ssh :2222
  rgbsweeper scores rgbsweeper`,
	PersistentPreRunE: applyGlobalFlags,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Screen refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rgbsweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size for the custom preset (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagMines, "mines", -1, "Mines per color for the custom preset (-1 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.rgbsweeper/rgbsweeper.log", "Log file used while playing")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyGlobalFlags checks the global flags and hands the board settings
// to the game package before any game is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := parseLogLevel(flagLogLevel); err != nil {
		return err
	}

	rgbsweeper.SetConfigPath(flagConfig)
	rgbsweeper.SetBoardOverride(flagSize, flagMines)
	return nil
}
