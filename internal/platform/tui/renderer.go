package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// ScreenRenderer implements render.Renderer on a terminal cell buffer.
// Drawing happens in world pixels; every coordinate is scaled down to the
// current terminal size.
type ScreenRenderer struct {
	screen *core.Screen
	worldW int
	worldH int
	frame  string
}

var _ render.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer mapping a worldW x worldH world onto
// cols x rows cells.
func NewScreenRenderer(worldW, worldH, cols, rows int) *ScreenRenderer {
	return &ScreenRenderer{
		screen: core.NewScreen(max(cols, 0), max(rows, 0)),
		worldW: max(worldW, 1),
		worldH: max(worldH, 1),
	}
}

// Resize changes the terminal size. The next Present reflects it.
func (r *ScreenRenderer) Resize(cols, rows int) {
	r.screen.Resize(max(cols, 0), max(rows, 0))
}

// Screen returns the cell buffer being drawn into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Frame returns the styled output of the last Present.
func (r *ScreenRenderer) Frame() string {
	return r.frame
}

// Clear implements render.Renderer.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// DrawRect implements render.Renderer. Any sprite that covers part of the
// world covers at least one cell.
func (r *ScreenRenderer) DrawRect(tex render.Texture, dst core.Rect) {
	sprite, ok := tex.(*Sprite)
	if !ok || sprite == nil || dst.Empty() {
		return
	}

	x0, y0 := r.cellX(dst.X), r.cellY(dst.Y)
	x1, y1 := r.cellX(dst.Right()), r.cellY(dst.Bottom())
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	r.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), sprite.Glyph, sprite.Color)
}

// DrawText implements render.Renderer.
func (r *ScreenRenderer) DrawText(font render.Font, text string, x, y int) {
	color := core.ColorDefault
	if f, ok := font.(*Font); ok && f != nil {
		color = f.Color
	}
	r.screen.DrawText(r.cellX(x), r.cellY(y), text, color)
}

// MeasureText implements render.Renderer. A line of text is one cell high
// and one cell per column wide, expressed in world pixels.
func (r *ScreenRenderer) MeasureText(_ render.Font, text string) (w, h int) {
	cols, rows := r.screen.Width(), r.screen.Height()
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	w = lipgloss.Width(text) * r.worldW / cols
	h = max(r.worldH/rows, 1)
	return w, h
}

// Present implements render.Renderer.
func (r *ScreenRenderer) Present() {
	r.frame = RenderScreen(r.screen)
}

func (r *ScreenRenderer) cellX(x int) int {
	return floorDiv(x*r.screen.Width(), r.worldW)
}

func (r *ScreenRenderer) cellY(y int) int {
	return floorDiv(y*r.screen.Height(), r.worldH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
