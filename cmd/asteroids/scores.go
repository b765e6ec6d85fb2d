package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagRecent      bool
	flagClear       bool
	flagResetLadder bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the highscore ladder and game history",
	Long: `Display the five-entry highscore ladder followed by the ten best
recorded games for the variant.

Examples:
  asteroids scores
  asteroids scores asteroids_classic
  asteroids scores --recent
  asteroids scores --clear asteroids_classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest games of every variant instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded history of the variant")
	scoresCmd.Flags().BoolVar(&flagResetLadder, "reset-ladder", false, "Restore the default highscore ladder")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available variants.")
		os.Exit(1)
	}

	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hs := highscore.Open(filepath.Join(dir, highscore.DefaultFile), nil)
	if flagResetLadder {
		if err := hs.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting ladder: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Highscore ladder reset.")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Printf("History for %s cleared.\n", variant)
		return
	}

	fmt.Println("Highscores")
	fmt.Println()
	for i, e := range hs.Table() {
		fmt.Printf("  %d. %-3s  %6d\n", i+1, e.Name, e.Score)
	}
	fmt.Println()

	if flagRecent {
		records, err := store.Recent(20)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
			return
		}
		fmt.Println("Recent games")
		fmt.Println()
		printRecords(records, true)
		return
	}

	records, err := store.TopScores(variant, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}

	fmt.Printf("Best games - %s\n", variant)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'asteroids play %s' to set the first score!\n", variant)
		return
	}
	printRecords(records, false)

	if stats, err := store.Stats(variant); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Best level: %d  Rocks: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel+1, stats.TotalRocks)
	}
}

func printRecords(records []storage.GameRecord, withVariant bool) {
	if withVariant {
		fmt.Printf("  %-4s  %-18s  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Variant", "Name", "Score", "Level", "Time", "Date")
	} else {
		fmt.Printf("  %-4s  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Name", "Score", "Level", "Time", "Date")
	}
	for i, r := range records {
		name := r.Player
		if name == "" {
			name = "---"
		}
		d := time.Duration(r.Duration) * time.Second
		dur := fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withVariant {
			fmt.Printf("  %-4d  %-18s  %-4s  %-8d  %-5d  %-6s  %s\n", i+1, r.Variant, name, r.Score, r.Level+1, dur, date)
		} else {
			fmt.Printf("  %-4d  %-4s  %-8d  %-5d  %-6s  %s\n", i+1, name, r.Score, r.Level+1, dur, date)
		}
	}
}
