package core

// Key is a physical key name, normalised across backends.
// Backends translate their native key codes into these names.
type Key string

// Keys the game reacts to. Anything else is ignored by the input handler.
const (
	KeySpace Key = "space"
	KeyH     Key = "h"
	KeyM     Key = "m"
	KeyP     Key = "p"
	KeyQ     Key = "q"
)

// EventKind distinguishes window-level events from key presses.
type EventKind int

const (
	EventKeyDown EventKind = iota // A key was pressed
	EventQuit                     // The window (or terminal session) is closing
)

// Event is a single raw input event delivered by a backend.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown only
}

// KeyDown creates a key-press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// QuitEvent creates a window-close event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// String returns a human-readable form for logging.
func (e Event) String() string {
	if e.Kind == EventQuit {
		return "quit"
	}
	return "keydown(" + string(e.Key) + ")"
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionFlap             // Space - flap in play, start from the menu
	ActionHighScore        // H - open the high score screen from the menu
	ActionMenu             // M - leave the high score screen
	ActionReplay           // P - leave the game over screen
	ActionQuit             // Q or window close - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionHighScore:
		return "HighScore"
	case ActionMenu:
		return "Menu"
	case ActionReplay:
		return "Replay"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
