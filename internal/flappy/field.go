package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeField owns the fixed arena of pipe slots.
// The slice is allocated once and never resized; pipes leaving the screen are
// recycled in place.
type PipeField struct {
	pipes   []Pipe
	rng     *rand.Rand
	cfg     config.PipesConfig
	screenW int
	screenH int
}

// PassResult summarises one tick of the pipe lifecycle.
type PassResult struct {
	Passed int  // Pipes the bird got past this tick
	Hit    bool // Whether a pipe hit the bird
}

// NewPipeField allocates the arena and lays out the first pipes.
func NewPipeField(cfg config.Config, rng *rand.Rand) *PipeField {
	f := &PipeField{
		pipes:   make([]Pipe, cfg.Pipes.Count),
		rng:     rng,
		cfg:     cfg.Pipes,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
	f.Layout()
	return f
}

// Layout places every pipe off-screen to the right, evenly spaced by
// screenWidth/count, with fresh random gaps.
func (f *PipeField) Layout() {
	spacing := f.screenW / len(f.pipes)
	for i := range f.pipes {
		f.pipes[i].respawn(f.screenW+i*spacing, f.randomY(), f.randomDirection())
	}
}

// Advance runs one tick of the lifecycle against the bird hitbox.
//
// Pipes are handled in index order. Each pipe is first checked for a collision
// at its pre-tick position; a hit stops the pass, leaving the remaining pipes
// where they were. Otherwise the pipe moves left, oscillates, is recycled once
// it is fully off-screen, and is scored when its left edge crosses the bird.
func (f *PipeField) Advance(bird core.Rect) PassResult {
	var res PassResult
	for i := range f.pipes {
		p := &f.pipes[i]

		if Collides(bird, *p, f.cfg.Width, f.cfg.Gap) {
			res.Hit = true
			return res
		}

		p.X -= f.cfg.Speed
		p.oscillate(f.cfg.YSpeed, f.cfg.YRange)

		if p.X < -f.cfg.Width {
			p.respawn(f.screenW, f.randomY(), f.randomDirection())
		}

		if !p.Passed && p.X < bird.X {
			p.Passed = true
			res.Passed++
		}
	}
	return res
}

// Pipes returns the arena. Callers must treat it as read-only.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}

// Width returns the pipe column width.
func (f *PipeField) Width() int {
	return f.cfg.Width
}

// Gap returns the gap height.
func (f *PipeField) Gap() int {
	return f.cfg.Gap
}

// randomY picks a gap top edge uniformly in [margin, screenH-gap-margin].
func (f *PipeField) randomY() int {
	span := f.screenH - f.cfg.Gap - 2*f.cfg.SpawnMargin + 1
	if span <= 1 {
		return f.cfg.SpawnMargin
	}
	return f.cfg.SpawnMargin + f.rng.Intn(span)
}

func (f *PipeField) randomDirection() int {
	if f.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}
