package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, ranked by level reached and then kills.

Examples:
  shooter scores
  shooter scores --limit 25
  shooter scores --player ace
  shooter scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player, newest first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run database: %v", err)
	}

	if flagScoresClear {
		err := store.ClearRuns()
		store.Close()
		if err != nil {
			fatalf("clearing runs: %v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.RunRecord
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fatalf("retrieving runs: %v", err)
	}
	stats, statsErr := store.Stats()
	store.Close()

	p := message.NewPrinter(language.English)

	fmt.Println("High Scores - Space Shooter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %5s  %7s  %8s  %-7s  %s\n", "Rank", "Player", "Level", "Kills", "Time", "Lost by", "Date")
	fmt.Printf("  %-4s  %-14s  %5s  %7s  %8s  %-7s  %s\n", "----", "------", "-----", "-----", "----", "-------", "----")

	for i, r := range runs {
		played := time.Duration(r.Ticks) * time.Second / time.Duration(cfg.Timing.TickRate)
		fmt.Printf("  %-4d  %-14s  %5d  %7s  %8s  %-7s  %s\n",
			i+1, r.Player, r.Level, p.Sprintf("%d", r.Kills),
			played.Truncate(time.Second), r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if statsErr == nil && stats.Runs > 0 {
		fmt.Println()
		p.Printf("%d runs, best level %d, %d kills in total, average level %.1f\n",
			stats.Runs, stats.BestLevel, stats.TotalKills, stats.AvgLevel)
	}
}
