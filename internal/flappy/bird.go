package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player avatar. X never changes during a round.
type Bird struct {
	X        int     // Fixed horizontal position (left edge)
	Y        float64 // Vertical position of the top edge, never negative
	Velocity float64 // Vertical velocity, positive is down
}

// Rect returns the bird's hitbox for a square of the given size.
func (b Bird) Rect(size int) core.Rect {
	return core.NewRect(b.X, int(b.Y), size, size)
}

// Flap replaces the vertical velocity with the upward impulse.
func (b *Bird) Flap(impulse float64) {
	b.Velocity = impulse
}

// Fall integrates one tick of gravity. The bird cannot rise above the top of
// the screen, but hitting it keeps whatever velocity the bird had.
func (b *Bird) Fall(gravity float64) {
	b.Velocity += gravity
	b.Y += b.Velocity
	if b.Y < 0 {
		b.Y = 0
	}
}
