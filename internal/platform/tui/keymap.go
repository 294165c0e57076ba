package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap binds terminal keys to the game's keys.
type KeyMap struct {
	Flap      key.Binding
	HighScore key.Binding
	Menu      key.Binding
	Replay    key.Binding
	Quit      key.Binding
	Close     key.Binding // Acts like closing the window
}

// DefaultKeyMap returns the classic bindings. Letters match either case.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap/play"),
		),
		HighScore: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "high score"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "menu"),
		),
		Replay: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "close"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.HighScore, k.Menu, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.HighScore, k.Menu},
		{k.Replay, k.Quit, k.Close},
	}
}

// Event translates a key message to a game input event.
// It returns false for keys the game does not use.
func (k KeyMap) Event(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Close):
		return core.QuitEvent(), true
	case key.Matches(msg, k.Flap):
		return core.KeyDown(core.KeySpace), true
	case key.Matches(msg, k.HighScore):
		return core.KeyDown(core.KeyH), true
	case key.Matches(msg, k.Menu):
		return core.KeyDown(core.KeyM), true
	case key.Matches(msg, k.Replay):
		return core.KeyDown(core.KeyP), true
	case key.Matches(msg, k.Quit):
		return core.KeyDown(core.KeyQ), true
	}
	return core.Event{}, false
}
