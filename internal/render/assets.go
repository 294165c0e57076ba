package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Assets holds every handle the draw dispatch needs.
type Assets struct {
	Bird                Texture
	PipeTop             Texture
	PipeBottom          Texture
	Background          Texture
	MenuBackground      Texture
	HighScoreBackground Texture
	Font                Font
}

// Extensions tells LoadAssets how a backend names its files on disk.
type Extensions struct {
	Image string // e.g. ".png"
	Font  string // e.g. ".ttf"
}

// LoadAssets loads the six textures and the font. Either everything loads or
// nothing stays acquired: on failure the handles loaded so far are released.
func LoadAssets(l Loader, cfg config.AssetsConfig, ext Extensions, logger *log.Logger) (*Assets, error) {
	if logger == nil {
		logger = log.Default()
	}

	a := &Assets{}
	images := []struct {
		name string
		dst  *Texture
	}{
		{cfg.Bird, &a.Bird},
		{cfg.PipeTop, &a.PipeTop},
		{cfg.PipeBottom, &a.PipeBottom},
		{cfg.Background, &a.Background},
		{cfg.MenuBackground, &a.MenuBackground},
		{cfg.HighScoreBackground, &a.HighScoreBackground},
	}

	for _, img := range images {
		path := img.name + ext.Image
		tex, err := l.LoadImage(path)
		if err != nil {
			a.Release()
			return nil, fmt.Errorf("render: loading image %s: %w", path, err)
		}
		*img.dst = tex
		logger.Debug("loaded texture", "path", path)
	}

	path := cfg.Font + ext.Font
	font, err := l.LoadFont(path, cfg.FontSize)
	if err != nil {
		a.Release()
		return nil, fmt.Errorf("render: loading font %s: %w", path, err)
	}
	a.Font = font
	logger.Debug("loaded font", "path", path, "size", cfg.FontSize)

	return a, nil
}

// Release frees every acquired handle. It is safe to call more than once.
func (a *Assets) Release() {
	for _, tex := range []*Texture{
		&a.Bird, &a.PipeTop, &a.PipeBottom,
		&a.Background, &a.MenuBackground, &a.HighScoreBackground,
	} {
		if *tex != nil {
			(*tex).Release()
			*tex = nil
		}
	}
	if a.Font != nil {
		a.Font.Release()
		a.Font = nil
	}
}
