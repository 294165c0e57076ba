package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "Show the round journal",
	Long: `List recently finished rounds from the journal, newest first, with a
summary of all recorded rounds. The journal is only written by commands run
with --journal; it never affects the in-game high score.

Examples:
  flappy rounds
  flappy rounds --limit 50 --plain
  flappy rounds --journal ./soak.db
  flappy rounds --clear`,
	Args: cobra.NoArgs,
	RunE: runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to show")
	roundsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	roundsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded round")
}

func runRounds(_ *cobra.Command, _ []string) error {
	path := flagJournal
	if path == "" {
		path = defaultJournalPath
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Journal cleared.")
		return nil
	}

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		printRounds(os.Stdout, rounds, stats)
		return nil
	}
	return tui.RunRounds(rounds, stats, width, height)
}

func printRounds(w io.Writer, rounds []storage.Round, stats *storage.RoundStats) {
	fmt.Fprintln(w, "Flappy Rounds")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-6s %6s %6s %8s %-6s %-9s %-12s %s\n",
		"#", "Score", "Best", "Ticks", "Cause", "Backend", "Player", "Ended")
	for _, row := range tui.RoundRows(rounds) {
		fmt.Fprintf(w, "%-6s %6s %6s %8s %-6s %-9s %-12s %s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7])
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w, tui.Summary(stats))
}
