package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the bird hitbox touches the solid part of a pipe.
//
// The bird must overlap the pipe column horizontally and stick out of the gap
// vertically, either above its top edge or below its bottom edge. All edges are
// half-open: a bird exactly flush with a pipe or a gap edge does not collide.
func Collides(bird core.Rect, p Pipe, pipeWidth, gap int) bool {
	column := core.NewRect(p.X, 0, pipeWidth, 0)
	if !bird.OverlapsX(column) {
		return false
	}
	return bird.Y < p.Y || bird.Bottom() > p.Y+gap
}
