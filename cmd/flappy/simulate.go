package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagTicks int
	flagDelay time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play without a screen",
	Long: `Run the game loop headless with a built-in autopilot. The autopilot starts
rounds from the menu, flaps toward the next gap and replays after every game
over until the tick budget runs out.

Examples:
  flappy simulate --ticks 100000 --seed 1
  flappy simulate --delay 16ms --log-level debug
  flappy simulate --journal ./soak.db`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of loop iterations to run")
	simulateCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Delay after each tick (0 = as fast as possible)")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger("flappy-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	s := seed()
	game := flappy.New(cfg, s)
	opts := []engine.Option{engine.WithLogger(logger)}

	store, err := openJournal(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, engine.WithRecorder(storage.NewJournal(store, "simulate", "autopilot", logger)))
	}

	driver := engine.New(game, engine.NewAutopilot(game, flagTicks), nil, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = driver.Run(ctx, flagDelay)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := game.State()
	logger.Info("simulation finished",
		"seed", s,
		"rounds", st.Rounds,
		"high_score", st.HighScore,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	fmt.Printf("seed=%d rounds=%d high_score=%d\n", s, st.Rounds, st.HighScore)
	return nil
}
