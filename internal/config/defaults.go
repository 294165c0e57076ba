package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is returned alongside the error when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Bird: BirdConfig{
			Size: 40,
		},
		Pipes: PipesConfig{
			Count:       3,
			Width:       80,
			Gap:         200,
			Speed:       2,
			YSpeed:      1,
			YRange:      100,
			SpawnMargin: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -5,
		},
		Timing: TimingConfig{
			Tick: 16 * time.Millisecond,
		},
		ResetOnPlay: true,
		Assets: AssetsConfig{
			Bird:                "bird",
			PipeTop:             "top_pipe",
			PipeBottom:          "bottom_pipe",
			Background:          "background",
			MenuBackground:      "menu_background",
			HighScoreBackground: "high_score_background",
			Font:                "font",
			FontSize:            24,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
