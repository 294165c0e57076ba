package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with PNG textures and a TrueType font.

Without --assets the built-in images and the Go Regular font are used. An asset
directory must contain bird.png, top_pipe.png, bottom_pipe.png, background.png,
menu_background.png, high_score_background.png and font.ttf (names follow the
assets section of the config).

Examples:
  flappy window
  flappy window --assets ./assets`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("flappy", os.Stderr)
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

	opts := window.Options{
		Config: cfg,
		Seed:   seed(),
		Assets: assets,
		Logger: logger,
	}

	store, err := openJournal(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts.Recorder = storage.NewJournal(store, "window", os.Getenv("USER"), logger)
	}

	return window.Run(opts)
}
