package render

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Scene is the read-only view of a game the dispatcher draws from.
type Scene interface {
	State() flappy.State
	Bird() flappy.Bird
	Pipes() []flappy.Pipe
	Config() config.Config
}

// Screen texts.
const (
	TitleText         = "Flappy Bird"
	PlayPromptText    = "Press SPACE to Play"
	HighScorePrompt   = "Press H to View High Scores"
	GameOverText      = "Game Over! Press P to Play Again or Q to Quit"
	BackToMenuText    = "Press M to go back to Menu"
	scoreTextFormat   = "Score: %d"
	highScoreFormat   = "High Score: %d"
	backToMenuPadding = 50
	scoreMargin       = 10
)

// Dispatcher draws whichever screen the game's mode calls for.
type Dispatcher struct {
	r      Renderer
	assets *Assets
}

// NewDispatcher creates a dispatcher drawing with r and assets.
func NewDispatcher(r Renderer, assets *Assets) *Dispatcher {
	return &Dispatcher{r: r, assets: assets}
}

// Draw renders one complete frame for the scene's current mode.
func (d *Dispatcher) Draw(s Scene) {
	d.r.Clear()

	cfg := s.Config()
	st := s.State()
	switch st.Mode {
	case flappy.ModePlaying:
		d.drawPlaying(s, cfg, st)
	case flappy.ModeMenu:
		d.drawMenu(cfg)
	case flappy.ModeGameOver:
		d.drawGameOver(cfg)
	case flappy.ModeHighScore:
		d.drawHighScore(cfg, st)
	}

	d.r.Present()
}

func (d *Dispatcher) fullScreen(cfg config.Config) core.Rect {
	return core.NewRect(0, 0, cfg.Screen.Width, cfg.Screen.Height)
}

func (d *Dispatcher) drawPlaying(s Scene, cfg config.Config, st flappy.State) {
	d.r.DrawRect(d.assets.Background, d.fullScreen(cfg))
	d.r.DrawRect(d.assets.Bird, s.Bird().Rect(cfg.Bird.Size))

	for _, p := range s.Pipes() {
		d.r.DrawRect(d.assets.PipeTop, p.TopRect(cfg.Pipes.Width))
		d.r.DrawRect(d.assets.PipeBottom, p.BottomRect(cfg.Pipes.Width, cfg.Pipes.Gap, cfg.Screen.Height))
	}

	d.r.DrawText(d.assets.Font, fmt.Sprintf(scoreTextFormat, st.Score), scoreMargin, scoreMargin)
}

func (d *Dispatcher) drawMenu(cfg config.Config) {
	d.r.DrawRect(d.assets.MenuBackground, d.fullScreen(cfg))

	w, h := cfg.Screen.Width, cfg.Screen.Height
	tw, _ := d.r.MeasureText(d.assets.Font, TitleText)
	d.r.DrawText(d.assets.Font, TitleText, w/2-tw/2, h/4)

	tw, th := d.r.MeasureText(d.assets.Font, PlayPromptText)
	d.r.DrawText(d.assets.Font, PlayPromptText, w/2-tw/2, h/2)

	// Placed one line below the play prompt, using the prompt's height.
	tw, _ = d.r.MeasureText(d.assets.Font, HighScorePrompt)
	d.r.DrawText(d.assets.Font, HighScorePrompt, w/2-tw/2, h/2+th)
}

func (d *Dispatcher) drawGameOver(cfg config.Config) {
	d.r.DrawRect(d.assets.MenuBackground, d.fullScreen(cfg))

	tw, th := d.r.MeasureText(d.assets.Font, GameOverText)
	d.r.DrawText(d.assets.Font, GameOverText, cfg.Screen.Width/2-tw/2, cfg.Screen.Height/2-th/2)
}

func (d *Dispatcher) drawHighScore(cfg config.Config, st flappy.State) {
	d.r.DrawRect(d.assets.HighScoreBackground, d.fullScreen(cfg))

	w, h := cfg.Screen.Width, cfg.Screen.Height
	text := fmt.Sprintf(highScoreFormat, st.HighScore)
	tw, th := d.r.MeasureText(d.assets.Font, text)
	d.r.DrawText(d.assets.Font, text, w/2-tw/2, h/2-th/2)

	tw, th = d.r.MeasureText(d.assets.Font, BackToMenuText)
	d.r.DrawText(d.assets.Font, BackToMenuText, w/2-tw/2, h/2+th/2+backToMenuPadding)
}
