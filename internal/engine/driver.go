// Package engine runs the game loop: drain input, advance the world, draw,
// then wait for the next tick.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/input"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// Source delivers raw input events. Poll must not block and returns every
// event queued since the previous call.
type Source interface {
	Poll() []core.Event
}

// Drawer draws one frame of the game.
type Drawer interface {
	Draw(s render.Scene)
}

// Round describes a finished round.
type Round struct {
	Score     int
	HighScore int
	Ticks     int
	Cause     flappy.EndCause
}

// Recorder is told about every finished round.
type Recorder interface {
	RecordRound(r Round)
}

// Driver owns one game context and ticks it.
// It is not safe for concurrent use; run it from a single goroutine.
type Driver struct {
	game     *flappy.Game
	source   Source
	drawer   Drawer
	handler  *input.Handler
	keymap   input.Keymap
	recorder Recorder
	logger   *log.Logger
	done     bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithRecorder reports finished rounds to r.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithLogger sets the driver's logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithKeymap replaces the default key bindings.
func WithKeymap(km input.Keymap) Option {
	return func(d *Driver) { d.keymap = km }
}

// New creates a driver for game, reading from source and drawing with drawer.
// A nil drawer skips rendering.
func New(game *flappy.Game, source Source, drawer Drawer, opts ...Option) *Driver {
	d := &Driver{
		game:   game,
		source: source,
		drawer: drawer,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.handler = input.NewHandler(d.keymap, d.logger)
	return d
}

// Tick runs one iteration of the loop and reports whether the loop should
// continue. Once a quit has been seen, Tick does nothing and returns false.
func (d *Driver) Tick() bool {
	if d.done {
		return false
	}

	before := d.game.Mode()
	if d.handler.Drain(d.source.Poll(), d.game) {
		d.done = true
		d.logger.Info("quit", "mode", d.game.Mode(), "high_score", d.game.State().HighScore)
		return false
	}
	if after := d.game.Mode(); after != before {
		d.logger.Debug("mode changed", "from", before, "to", after)
	}

	if d.game.Mode() == flappy.ModePlaying {
		res := d.game.Step()
		if res.Ended != flappy.EndNone {
			d.endRound(res.Ended)
		}
	}

	if d.drawer != nil {
		d.drawer.Draw(d.game)
	}
	return true
}

func (d *Driver) endRound(cause flappy.EndCause) {
	st := d.game.State()
	round := Round{
		Score:     st.Score,
		HighScore: st.HighScore,
		Ticks:     st.Ticks,
		Cause:     cause,
	}
	d.logger.Info("round over", "score", round.Score, "high_score", round.HighScore,
		"ticks", round.Ticks, "cause", cause)
	if d.recorder != nil {
		d.recorder.RecordRound(round)
	}
}

// Done reports whether a quit has been requested.
func (d *Driver) Done() bool {
	return d.done
}

// Game returns the driven game.
func (d *Driver) Game() *flappy.Game {
	return d.game
}

// Run ticks until quit or until ctx is cancelled, waiting a fixed delay after
// every tick. The delay does not account for the time the tick took, so the
// effective rate drifts below 1/delay under load.
func (d *Driver) Run(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		for d.Tick() {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	for d.Tick() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		timer.Reset(delay)
	}
	return nil
}
