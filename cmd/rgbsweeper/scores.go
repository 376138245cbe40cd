package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/registry"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times for a preset",
	Long: `Display the 10 fastest wins and overall stats for the specified preset.
Without a preset, a summary of every preset that has been played is shown.

Examples:
  rgbsweeper scores
  rgbsweeper scores rgbsweeper
  rgbsweeper scores rgbsweeper_hard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all results for the preset")
}

func runScores(_ *cobra.Command, args []string) {
	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a preset")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]

	// Check if preset exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rgbsweeper list' to see available presets.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", gameID)
		return
	}

	// Get best times
	times, err := store.BestTimes(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	// Display best times
	fmt.Printf("Best Times - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rgbsweeper play %s' to set the first best time!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Time", "Board", "Date")
		fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "----", "-----", "----")

		// Print results
		for i, r := range times {
			board := fmt.Sprintf("%dx%d/%d", r.Size, r.Size, r.MinesPerColor)
			dateStr := r.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-8s  %-10s  %s\n", i+1, rgbsweeper.FormatElapsed(r.Duration), board, dateStr)
		}
	}

	// Show stats
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Lost: %d  Cancelled: %d  Win rate: %.0f%%\n",
			stats.Played, stats.Won, stats.Lost, stats.Abandoned, stats.WinRate()*100)
		if stats.Won > 0 {
			fmt.Printf("Best: %s  Average win: %s\n",
				rgbsweeper.FormatElapsed(stats.BestTime), rgbsweeper.FormatElapsed(stats.AvgWinTime))
		}
	}
}

// printSummary prints one line of stats per played preset.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %6s  %4s  %5s  %8s  %s\n", "Preset", "Played", "Won", "Rate", "Best", "Last played")
	fmt.Printf("  %-20s  %6s  %4s  %5s  %8s  %s\n", "------", "------", "---", "----", "----", "-----------")
	for _, id := range ids {
		st := all[id]
		best := "-"
		if st.Won > 0 {
			best = rgbsweeper.FormatElapsed(st.BestTime)
		}
		fmt.Printf("  %-20s  %6d  %4d  %4.0f%%  %8s  %s\n",
			id, st.Played, st.Won, st.WinRate()*100, best, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
