package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

var textColor = color.White

// Renderer implements render.Renderer on the ebiten screen image handed to
// Draw. Textures are stretched to their destination rectangle.
type Renderer struct {
	target *ebiten.Image
}

var _ render.Renderer = (*Renderer)(nil)

// SetTarget selects the image the next frame draws into.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear implements render.Renderer.
func (r *Renderer) Clear() {
	if r.target != nil {
		r.target.Clear()
	}
}

// DrawRect implements render.Renderer.
func (r *Renderer) DrawRect(tex render.Texture, dst core.Rect) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil || r.target == nil || dst.Empty() {
		return
	}
	w, h := t.Size()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(w), float64(dst.H)/float64(h))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(t.img, op)
}

// DrawText implements render.Renderer. (x, y) is the top-left corner of the
// text box.
func (r *Renderer) DrawText(font render.Font, s string, x, y int) {
	f, ok := font.(*Font)
	if !ok || f == nil || f.face == nil || r.target == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(r.target, s, f.face, op)
}

// MeasureText implements render.Renderer.
func (r *Renderer) MeasureText(font render.Font, s string) (w, h int) {
	f, ok := font.(*Font)
	if !ok || f == nil || f.face == nil {
		return 0, 0
	}
	fw, fh := text.Measure(s, f.face, f.face.Size)
	return int(fw), int(fh)
}

// Present implements render.Renderer. ebiten shows the screen image itself
// once Draw returns.
func (r *Renderer) Present() {}
