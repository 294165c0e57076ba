// Package input turns raw backend events into game actions.
package input

import "github.com/vovakirdan/tui-flappy/internal/core"

// Keymap translates physical keys to game actions.
type Keymap map[core.Key]core.Action

// DefaultKeymap returns the classic bindings: Space flaps and starts, H shows
// the high score, M returns to the menu, P leaves the game over screen and Q
// quits.
func DefaultKeymap() Keymap {
	return Keymap{
		core.KeySpace: core.ActionFlap,
		core.KeyH:     core.ActionHighScore,
		core.KeyM:     core.ActionMenu,
		core.KeyP:     core.ActionReplay,
		core.KeyQ:     core.ActionQuit,
	}
}

// Action returns the action bound to key, or ActionNone.
func (km Keymap) Action(key core.Key) core.Action {
	if a, ok := km[key]; ok {
		return a
	}
	return core.ActionNone
}

// Classify maps a raw event to an action. Window close always means quit.
func (km Keymap) Classify(e core.Event) core.Action {
	if e.Kind == core.EventQuit {
		return core.ActionQuit
	}
	return km.Action(e.Key)
}
