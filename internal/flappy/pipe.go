package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pipe is one slot of the pipe arena: a column with a gap the bird flies through.
type Pipe struct {
	X          int  // Horizontal position (left edge)
	Y          int  // Top edge of the gap
	OriginalY  int  // Spawn height, the centre of the oscillation
	YDirection int  // +1 moving down, -1 moving up
	Passed     bool // Whether the bird has already scored this pipe
}

// TopRect returns the solid region above the gap.
func (p Pipe) TopRect(width int) core.Rect {
	return core.NewRect(p.X, 0, width, p.Y)
}

// BottomRect returns the solid region below the gap, down to the screen bottom.
func (p Pipe) BottomRect(width, gap, screenH int) core.Rect {
	bottomY := p.Y + gap
	return core.NewRect(p.X, bottomY, width, screenH-bottomY)
}

// oscillate moves the gap one step and turns around once it has left
// [OriginalY-yRange, OriginalY+yRange]. The turn happens after the step, so
// the gap can sit one step outside the range for a tick.
func (p *Pipe) oscillate(ySpeed, yRange int) {
	p.Y += p.YDirection * ySpeed
	if p.Y < p.OriginalY-yRange || p.Y > p.OriginalY+yRange {
		p.YDirection = -p.YDirection
	}
}

// respawn resets the slot in place at x with a fresh gap.
func (p *Pipe) respawn(x, y, direction int) {
	p.X = x
	p.Y = y
	p.OriginalY = y
	p.YDirection = direction
	p.Passed = false
}
