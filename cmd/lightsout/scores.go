package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightsout/internal/config"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
	"github.com/vovakirdan/tui-lightsout/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best results",
	Long: `Display the top 10 results for the given difficulty, or a summary
across all difficulties when none is given. Fewer moves is better.

Examples:
  lightsout scores
  lightsout scores normal
  lightsout scores normal --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded results for the given difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	catalog := cfg.Catalog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagReset {
			fmt.Fprintln(os.Stderr, "Error: --reset requires a difficulty")
			os.Exit(1)
		}
		printSummary(store, catalog)
		return
	}

	diff, ok := lightsout.Lookup(catalog, args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'lightsout list' to see available difficulties.")
		os.Exit(1)
	}

	if flagReset {
		if err := store.ClearResults(diff.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", diff.ID)
		return
	}

	results, err := store.TopResults(diff.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s (%dx%d)\n", diff.Label, diff.Size, diff.Size)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lightsout play %s' to set the first best!\n", diff.ID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Moves, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestMoves(diff.ID); bestErr == nil && best > 0 {
		fmt.Printf("Best: %d moves\n", best)
	}
}

// printSummary shows per-difficulty statistics across the whole catalog.
func printSummary(store *storage.Store, catalog []lightsout.Difficulty) {
	fmt.Println("Results summary:")
	fmt.Println()
	fmt.Printf("  %-10s  %-7s  %-7s  %-10s  %s\n", "Difficulty", "Clears", "Best", "Avg moves", "Last cleared")
	fmt.Printf("  %-10s  %-7s  %-7s  %-10s  %s\n", "----------", "------", "----", "---------", "------------")

	for _, d := range catalog {
		stats, err := store.Stats(d.ID)
		if err != nil || stats.Clears == 0 {
			fmt.Printf("  %-10s  %-7d  %-7s  %-10s  %s\n", d.ID, 0, "-", "-", "-")
			continue
		}

		fmt.Printf("  %-10s  %-7d  %-7d  %-10.1f  %s\n",
			d.ID,
			stats.Clears,
			stats.BestMoves,
			stats.AvgMoves,
			stats.LastCleared.Format("2006-01-02 15:04"),
		)
	}
}
