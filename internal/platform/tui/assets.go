package tui

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// File suffixes the terminal backend appends to asset names.
const (
	SpriteExt = ".sprite.yaml"
	FontExt   = ".font.yaml"
)

// Extensions is the naming scheme passed to render.LoadAssets.
var Extensions = render.Extensions{Image: SpriteExt, Font: FontExt}

//go:embed assets/*.yaml
var builtinAssets embed.FS

// BuiltinAssets returns the sprite set compiled into the binary.
func BuiltinAssets() fs.FS {
	sub, err := fs.Sub(builtinAssets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// spriteFile is the on-disk form of a terminal texture: every cell the
// texture covers is painted with one glyph.
type spriteFile struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// fontFile is the on-disk form of a terminal font. Terminals have one glyph
// size, so only the colour is configurable.
type fontFile struct {
	Color string `yaml:"color"`
}

// Sprite is a terminal texture.
type Sprite struct {
	Glyph    rune
	Color    core.Color
	released bool
}

// Release implements render.Texture.
func (s *Sprite) Release() { s.released = true }

// Released reports whether Release was called.
func (s *Sprite) Released() bool { return s.released }

// Font is a terminal font.
type Font struct {
	Color    core.Color
	Size     float64
	released bool
}

// Release implements render.Font.
func (f *Font) Release() { f.released = true }

// Released reports whether Release was called.
func (f *Font) Released() bool { return f.released }

// Loader reads sprite and font descriptors from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadImage implements render.Loader.
func (l *Loader) LoadImage(name string) (render.Texture, error) {
	var desc spriteFile
	if err := l.decode(name, &desc); err != nil {
		return nil, err
	}

	glyph, size := utf8.DecodeRuneInString(desc.Glyph)
	if size == 0 || glyph == utf8.RuneError || size != len(desc.Glyph) {
		return nil, fmt.Errorf("tui: sprite %s: glyph must be exactly one character, got %q", name, desc.Glyph)
	}
	color, err := core.ParseColor(desc.Color)
	if err != nil {
		return nil, fmt.Errorf("tui: sprite %s: %w", name, err)
	}
	return &Sprite{Glyph: glyph, Color: color}, nil
}

// LoadFont implements render.Loader.
func (l *Loader) LoadFont(name string, size float64) (render.Font, error) {
	var desc fontFile
	if err := l.decode(name, &desc); err != nil {
		return nil, err
	}

	color, err := core.ParseColor(desc.Color)
	if err != nil {
		return nil, fmt.Errorf("tui: font %s: %w", name, err)
	}
	return &Font{Color: color, Size: size}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, path.Clean(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("tui: %s: %w", name, render.ErrMissingAsset)
	}
	if err != nil {
		return fmt.Errorf("tui: reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("tui: parsing %s: %w", name, err)
	}
	return nil
}
