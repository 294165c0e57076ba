// Package render defines the contracts the game uses to draw itself and to
// load its textures and font, plus the per-mode draw dispatch built on them.
// Backends (terminal, window) implement Renderer and Loader.
package render

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrMissingAsset is returned by loaders when a named asset does not exist.
var ErrMissingAsset = errors.New("render: missing asset")

// Texture is an opaque image handle owned by the loader that produced it.
type Texture interface {
	Release()
}

// Font is an opaque font handle owned by the loader that produced it.
type Font interface {
	Release()
}

// Renderer draws one frame at a time in world pixel coordinates.
type Renderer interface {
	Clear()
	DrawRect(tex Texture, dst core.Rect)
	DrawText(font Font, text string, x, y int)
	MeasureText(font Font, text string) (w, h int)
	Present()
}

// Loader acquires textures and fonts by path.
type Loader interface {
	LoadImage(path string) (Texture, error)
	LoadFont(path string, size float64) (Font, error)
}
