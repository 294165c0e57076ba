package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Flappy Bird in the current terminal.

The 800x600 world is scaled to the terminal size. Logs are discarded unless
--log-file is given, since the game owns the screen.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --journal --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("flappy", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	assets, err := assetsFS(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   seed(),
		Assets: assets,
		Width:  width,
		Height: height,
		Logger: logger,
	}

	store, err := openJournal(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts.Recorder = storage.NewJournal(store, "tui", os.Getenv("USER"), logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, opts)
}
