package engine

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Autopilot is a Source that plays the game by itself. It starts rounds from
// the menu, flaps to keep the bird level with the next gap, replays after a
// game over and presses quit once its tick budget is spent.
type Autopilot struct {
	game   *flappy.Game
	budget int
	ticks  int
}

// NewAutopilot creates an autopilot for game that quits after budget polls.
// A budget of zero or less never quits.
func NewAutopilot(game *flappy.Game, budget int) *Autopilot {
	return &Autopilot{game: game, budget: budget}
}

// Poll decides this tick's input from the game state.
func (a *Autopilot) Poll() []core.Event {
	a.ticks++
	if a.budget > 0 && a.ticks > a.budget {
		return []core.Event{core.KeyDown(core.KeyQ)}
	}

	switch a.game.Mode() {
	case flappy.ModeMenu:
		return []core.Event{core.KeyDown(core.KeySpace)}
	case flappy.ModeHighScore:
		return []core.Event{core.KeyDown(core.KeyM)}
	case flappy.ModeGameOver:
		return []core.Event{core.KeyDown(core.KeyP)}
	}

	if a.shouldFlap() {
		return []core.Event{core.KeyDown(core.KeySpace)}
	}
	return nil
}

// shouldFlap flaps when the bird is falling and its bottom edge is about to
// drop below the gap of the nearest pipe still ahead of it.
func (a *Autopilot) shouldFlap() bool {
	cfg := a.game.Config()
	bird := a.game.Bird()
	size := float64(cfg.Bird.Size)

	pipes := a.game.Pipes()
	target := float64(cfg.Screen.Height) / 2
	nearest := -1
	for i, p := range pipes {
		if p.X+cfg.Pipes.Width < bird.X {
			continue
		}
		if nearest < 0 || p.X < pipes[nearest].X {
			nearest = i
		}
	}
	if nearest >= 0 {
		target = float64(pipes[nearest].Y + cfg.Pipes.Gap)
	}
	if floor := float64(cfg.Screen.Height); target > floor {
		target = floor
	}

	margin := size / 2
	return bird.Velocity >= 0 && bird.Y+size+bird.Velocity*4 > target-margin
}
