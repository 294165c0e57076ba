// flappy is a Flappy Bird clone for the terminal, a desktop window or SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy simulate          - Let the autopilot play headless
//	flappy rounds            - Show the round journal
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.flappy, ./configs, built-in)
//	--seed <value>      - RNG seed for reproducible pipes (0 = time based)
//	--journal[=<path>]  - Record finished rounds in SQLite (default: ~/.flappy/rounds.db)
//	--assets <dir>      - Directory with textures and font
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultJournalPath = "~/.flappy/rounds.db"

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagJournal  string
	flagAssets   string
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
	Use:   "flappy",
	Short: "Flappy Bird for your terminal, a window or SSH",
	Long: `Guide the bird through the gaps between the pipes. Every pipe you pass
scores a point; touching a pipe or falling to the ground ends the round.

Controls:
  Space  - Start from the menu / flap
  H      - View the high score (from the menu)
  M      - Back to the menu (from the high score)
  P      - Leave the game over screen
  Q      - Quit

Examples:
  flappy play
  flappy play --journal
  flappy window --seed 42
  flappy serve --ssh :23235
  flappy simulate --ticks 10000
  flappy rounds`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Record rounds in this SQLite database")
	rootCmd.PersistentFlags().Lookup("journal").NoOptDefVal = defaultJournalPath
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with textures and font (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(roundsCmd)
}
