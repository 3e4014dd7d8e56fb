// ztype is a falling-word typing game for the terminal.
//
// Usage:
//
//	ztype                    - Play a game (same as "ztype play")
//	ztype play               - Play a game
//	ztype scores             - Show high scores
//	ztype config             - Print the effective game configuration
//	ztype list               - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config, 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--config <path> - Use a custom game config YAML
//	--log <path>    - Write logs to a file (default: ~/.arcade/ztype.log, "" disables)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-ztype/internal/games/ztype"
)

const gameID = "ztype"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ztype",
	Short: "ZType - type the falling words before they land",
	Long: `ZType is a typing game for the terminal. Words fall from the top of
the screen; type a word's letters in order to destroy it. The game ends
when any word reaches the ground.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  ztype
  ztype play --seed 42
  ztype scores
  ztype config --config ./my-ztype.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/ztype.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
