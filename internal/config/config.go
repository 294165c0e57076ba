// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game.
type Config struct {
	Screen      ScreenConfig  `yaml:"screen"`
	Bird        BirdConfig    `yaml:"bird"`
	Pipes       PipesConfig   `yaml:"pipes"`
	Physics     PhysicsConfig `yaml:"physics"`
	Timing      TimingConfig  `yaml:"timing"`
	ResetOnPlay bool          `yaml:"reset_on_play"`
	Assets      AssetsConfig  `yaml:"assets"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig defines the bird hitbox.
type BirdConfig struct {
	Size int `yaml:"size"`
}

// PipesConfig defines the pipe arena and pipe motion.
type PipesConfig struct {
	Count       int `yaml:"count"`
	Width       int `yaml:"width"`
	Gap         int `yaml:"gap"`
	Speed       int `yaml:"speed"`
	YSpeed      int `yaml:"y_speed"`
	YRange      int `yaml:"y_range"`
	SpawnMargin int `yaml:"spawn_margin"`
}

// PhysicsConfig defines the bird's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
}

// TimingConfig defines loop pacing.
type TimingConfig struct {
	Tick time.Duration `yaml:"tick"`
}

// AssetsConfig names the textures and the font. Names carry no extension;
// each backend appends its own (".png" and ".ttf" for the window,
// ".sprite.yaml" and ".font.yaml" for the terminal).
type AssetsConfig struct {
	Dir                 string  `yaml:"dir"`
	Bird                string  `yaml:"bird"`
	PipeTop             string  `yaml:"pipe_top"`
	PipeBottom          string  `yaml:"pipe_bottom"`
	Background          string  `yaml:"background"`
	MenuBackground      string  `yaml:"menu_background"`
	HighScoreBackground string  `yaml:"high_score_background"`
	Font                string  `yaml:"font"`
	FontSize            float64 `yaml:"font_size"`
}

// BirdX returns the fixed horizontal position of the bird.
func (c Config) BirdX() int {
	return c.Screen.Width / 4
}

// BirdStartY returns the vertical position the bird starts a round at.
func (c Config) BirdStartY() float64 {
	return float64(c.Screen.Height / 2)
}

// SpawnSpan returns the number of distinct gap positions a recycled pipe can take.
func (c Config) SpawnSpan() int {
	return c.Screen.Height - c.Pipes.Gap - 2*c.Pipes.SpawnMargin + 1
}

// Validate reports configuration values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Bird.Size <= 0 {
		errs = append(errs, fmt.Errorf("bird.size must be positive, got %d", c.Bird.Size))
	}
	if c.Pipes.Count <= 0 {
		errs = append(errs, fmt.Errorf("pipes.count must be positive, got %d", c.Pipes.Count))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipes.width must be positive, got %d", c.Pipes.Width))
	}
	if c.Pipes.Gap <= c.Bird.Size {
		errs = append(errs, fmt.Errorf("pipes.gap (%d) must exceed bird.size (%d)", c.Pipes.Gap, c.Bird.Size))
	}
	if c.Pipes.Speed <= 0 {
		errs = append(errs, fmt.Errorf("pipes.speed must be positive, got %d", c.Pipes.Speed))
	}
	if c.Pipes.YSpeed < 0 || c.Pipes.YRange < 0 || c.Pipes.SpawnMargin < 0 {
		errs = append(errs, errors.New("pipes.y_speed, pipes.y_range and pipes.spawn_margin must not be negative"))
	}
	if c.SpawnSpan() <= 0 {
		errs = append(errs, fmt.Errorf("screen.height %d leaves no room for a %d gap with %d margins",
			c.Screen.Height, c.Pipes.Gap, c.Pipes.SpawnMargin))
	}
	if c.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick must be positive, got %s", c.Timing.Tick))
	}
	if c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("assets.font_size must be positive, got %v", c.Assets.FontSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
