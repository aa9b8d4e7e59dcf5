// surimi is a top-down survival shooter played in the terminal.
//
// Usage:
//
//	surimi list              - List game modes
//	surimi play [mode]       - Play a mode (default: surimi)
//	surimi menu              - Pick modes interactively
//	surimi serve             - Start SSH server for remote play
//	surimi scores [mode]     - Show the best runs for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.surimi/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--sprites <path>      - Sprite sheet YAML
//	--verbose             - Log startup details
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/surimi-survivors/internal/assets"
	"github.com/vovakirdan/surimi-survivors/internal/config"
	"github.com/vovakirdan/surimi-survivors/internal/games/surimi"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "surimi",
	Short: "Surimi Survivors - survive the shark tide in your terminal",
	Long: `Surimi Survivors is a top-down survival shooter for the terminal.
Steer your crab, fire at the sharks closing in, and last as long as you can.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  surimi play
  surimi play surimi_classic
  surimi menu --difficulty hard
  surimi serve --ssh :2222 --metrics :9090
  surimi scores surimi`,
	PersistentPreRun: setupGames,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.surimi/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log startup details to stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupGames validates the shared flags and hands them to the game package
// before any game is created.
func setupGames(cmd *cobra.Command, _ []string) {
	log.SetPrefix("surimi")
	log.SetReportTimestamp(true)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	if flagConfig != "" {
		if _, err := config.LoadSurimi(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	sheet, err := assets.Load(flagSprites)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	surimi.SetConfigPath(flagConfig)
	surimi.SetDifficultyPreset(flagDifficulty)
	surimi.SetSprites(sheet)

	log.Debug("games configured",
		"command", cmd.Name(),
		"config", flagConfig,
		"difficulty", flagDifficulty,
		"sprites", sheet.Names(),
	)
}
