package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/overland/internal/registry"
	"github.com/vovakirdan/overland/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode.

Examples:
  overland scores roam
  overland scores rush`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'overland list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'overland play %s' to set the first record!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n",
		"Rank", "Score", "Time", "Tiles", "Chunks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n",
		"----", "-----", "----", "-----", "------", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %-8d  %s\n",
			i+1, run.Score, fmt.Sprintf("%ds", run.DurationSecs),
			run.DistanceTiles, run.ChunksSeen, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}

	if stats, err := store.GetModeStats(modeID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.RunsCount, stats.AvgScore)
	}
}
