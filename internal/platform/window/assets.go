package window

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	// Registers the PNG decoder used by ebitenutil.
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-flappy/internal/render"
)

// Extensions is the naming scheme passed to render.LoadAssets.
var Extensions = render.Extensions{Image: ".png", Font: ".ttf"}

//go:embed assets/*.png
var builtinAssets embed.FS

// Texture is an ebiten image handle.
type Texture struct {
	img *ebiten.Image
}

// Release implements render.Texture.
func (t *Texture) Release() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// Size returns the image size in pixels, or zero once released.
func (t *Texture) Size() (w, h int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Font is a sized text face.
type Font struct {
	face *text.GoTextFace
}

// Release implements render.Font. Faces hold no GPU memory; the handle is
// only dropped.
func (f *Font) Release() {
	f.face = nil
}

// Loader reads PNG textures and TrueType fonts from a file system.
type Loader struct {
	fsys     fs.FS
	fallback []byte // Font data used when the font file is absent
}

// NewLoader creates a loader rooted at fsys. Every asset must exist.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// BuiltinLoader returns a loader for the images compiled into the binary,
// with the Go Regular typeface as the font.
func BuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinAssets, "assets")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, fallback: goregular.TTF}
}

// LoadImage implements render.Loader.
func (l *Loader) LoadImage(name string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("window: %s: %w", name, render.ErrMissingAsset)
	}
	if err != nil {
		return nil, fmt.Errorf("window: decoding %s: %w", name, err)
	}
	return &Texture{img: img}, nil
}

// LoadFont implements render.Loader.
func (l *Loader) LoadFont(name string, size float64) (render.Font, error) {
	data, err := fs.ReadFile(l.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist) && l.fallback != nil:
		data = l.fallback
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("window: %s: %w", name, render.ErrMissingAsset)
	case err != nil:
		return nil, fmt.Errorf("window: reading %s: %w", name, err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: parsing font %s: %w", name, err)
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: size}}, nil
}
