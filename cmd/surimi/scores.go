package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/surimi-survivors/internal/games/surimi"
	"github.com/vovakirdan/surimi-survivors/internal/platform/tui"
	"github.com/vovakirdan/surimi-survivors/internal/registry"
	"github.com/vovakirdan/surimi-survivors/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the given mode (surimi by default).

Examples:
  surimi scores
  surimi scores surimi_classic --limit 25
  surimi scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show totals for every mode instead")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagAll {
		runAllStats()
		return
	}

	gameID := surimi.SurvivalID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'surimi list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'surimi play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-16s  %s\n", "Rank", "Score", "Kills", "Time", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-16s  %s\n", "----", "-----", "-----", "----", "----", "---")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-8s  %-16s  %s\n",
			i+1, r.Score, r.Kills, tui.FormatDuration(r.PlayTime),
			r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Kills: %d  Longest: %s\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalKills,
			tui.FormatDuration(stats.LongestRun))
	}
}

// runAllStats prints one summary line per mode that has been played.
func runAllStats() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-6s  %s\n", "Mode", "Runs", "Best", "Average", "Kills", "Longest")
	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-6s  %s\n", "----", "----", "----", "-------", "-----", "-------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-5d  %-8d  %-8.0f  %-6d  %s\n",
			g.ID, st.RunsCount, st.HighScore, st.AvgScore, st.TotalKills, tui.FormatDuration(st.LongestRun))
	}
}
