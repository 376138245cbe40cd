package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board presets",
	Long:  `Shows every registered board preset with its size and mines per color.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	// Print presets in menu order
	for _, p := range rgbsweeper.Presets() {
		board := "invalid config"
		if cfg, err := rgbsweeper.ResolveConfig(p.Difficulty); err == nil {
			board = fmt.Sprintf("%dx%d, %d mines per color", cfg.Board.Size, cfg.Board.Size, cfg.Board.MinesPerColor)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, p.ID, maxTitleLen, p.Title, board)
	}

	fmt.Println()
	fmt.Println("Run 'rgbsweeper play <id>' to play a preset.")
}
