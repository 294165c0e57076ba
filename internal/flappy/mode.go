package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Mode is the active screen of the game. Exactly one mode is active at a time.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeHighScore
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// Transition returns the mode an action leads to from m, and whether the
// action changes the mode at all. GameOver is never reached through input:
// only the simulation ends a round. Quit is handled by the input layer.
func (m Mode) Transition(a core.Action) (Mode, bool) {
	switch {
	case m == ModeMenu && a == core.ActionFlap:
		return ModePlaying, true
	case m == ModeMenu && a == core.ActionHighScore:
		return ModeHighScore, true
	case m == ModeHighScore && a == core.ActionMenu:
		return ModeMenu, true
	case m == ModeGameOver && a == core.ActionReplay:
		return ModeMenu, true
	}
	return m, false
}
