// Package flappy implements the Flappy Bird simulation: bird physics, the pipe
// arena, collision detection and the screen-mode state machine.
//
// A Game is the whole mutable world of one player. It has no global state and
// is not safe for concurrent use; the loop that owns it is its only caller.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EndCause tells why a round ended.
type EndCause int

const (
	EndNone  EndCause = iota
	EndPipe           // The bird hit a pipe
	EndFloor          // The bird fell through the bottom of the screen
)

// String returns the cause name for logging.
func (c EndCause) String() string {
	switch c {
	case EndPipe:
		return "pipe"
	case EndFloor:
		return "floor"
	default:
		return "none"
	}
}

// State is a read-only summary of the game for the platform layer.
type State struct {
	Mode      Mode
	Score     int
	HighScore int
	Ticks     int // Ticks simulated in the current round
	Rounds    int // Rounds started since the game was created
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Scored int      // Points gained this tick
	Ended  EndCause // Non-zero when this tick ended the round
}

// Game is the per-player game context.
type Game struct {
	cfg       config.Config
	rng       *rand.Rand
	bird      Bird
	pipes     *PipeField
	mode      Mode
	score     int
	highScore int
	ticks     int
	rounds    int
}

// New creates a game in the menu with a freshly laid out world.
// The seed drives every random pipe placement.
func New(cfg config.Config, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		cfg:   cfg,
		rng:   rng,
		pipes: NewPipeField(cfg, rng),
		mode:  ModeMenu,
	}
	g.resetBird()
	return g
}

// Reset puts the bird back at its start position, lays the pipes out again and
// zeroes the score. The high score survives.
func (g *Game) Reset() {
	g.resetBird()
	g.pipes.Layout()
	g.score = 0
	g.ticks = 0
}

func (g *Game) resetBird() {
	g.bird = Bird{
		X: g.cfg.BirdX(),
		Y: g.cfg.BirdStartY(),
	}
}

// Apply feeds one semantic action into the state machine.
// It returns true if the action had an effect: a mode change or, while
// playing, a flap.
func (g *Game) Apply(a core.Action) bool {
	if g.mode == ModePlaying && a == core.ActionFlap {
		g.bird.Flap(g.cfg.Physics.FlapImpulse)
		return true
	}

	next, ok := g.mode.Transition(a)
	if !ok {
		return false
	}
	if next == ModePlaying {
		if g.cfg.ResetOnPlay {
			g.Reset()
		}
		g.rounds++
	}
	g.mode = next
	return true
}

// Step advances the world by one tick. It does nothing outside ModePlaying.
//
// Order within a tick: gravity, then the pipe pass (collision check, motion,
// recycling and scoring per pipe), then the floor check.
func (g *Game) Step() StepResult {
	var res StepResult
	if g.mode != ModePlaying {
		return res
	}
	g.ticks++

	g.bird.Fall(g.cfg.Physics.Gravity)

	size := g.cfg.Bird.Size
	pass := g.pipes.Advance(g.bird.Rect(size))
	if pass.Passed > 0 {
		g.score += pass.Passed
		res.Scored = pass.Passed
		if g.score > g.highScore {
			g.highScore = g.score
		}
	}

	switch {
	case pass.Hit:
		res.Ended = EndPipe
	case g.bird.Y+float64(size) > float64(g.cfg.Screen.Height):
		res.Ended = EndFloor
	}
	if res.Ended != EndNone {
		g.mode = ModeGameOver
	}
	return res
}

// State returns the current game summary.
func (g *Game) State() State {
	return State{
		Mode:      g.mode,
		Score:     g.score,
		HighScore: g.highScore,
		Ticks:     g.ticks,
		Rounds:    g.rounds,
	}
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns the pipe arena. Callers must treat it as read-only.
func (g *Game) Pipes() []Pipe {
	return g.pipes.Pipes()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
