package input

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Target receives the actions the handler dispatches.
type Target interface {
	Apply(a core.Action) bool
}

// Handler drains one tick's worth of events into a Target.
type Handler struct {
	keymap Keymap
	logger *log.Logger
}

// NewHandler creates a handler. A nil logger falls back to log.Default().
func NewHandler(km Keymap, logger *log.Logger) *Handler {
	if km == nil {
		km = DefaultKeymap()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{keymap: km, logger: logger}
}

// Drain dispatches events in order and reports whether a quit was requested.
// Quit wins over everything: the events after it are dropped.
func (h *Handler) Drain(events []core.Event, target Target) (quit bool) {
	for i, e := range events {
		action := h.keymap.Classify(e)
		switch action {
		case core.ActionNone:
			continue
		case core.ActionQuit:
			if dropped := len(events) - i - 1; dropped > 0 {
				h.logger.Debug("quit requested, dropping pending events", "dropped", dropped)
			}
			return true
		}
		if target.Apply(action) {
			h.logger.Debug("input", "event", e, "action", action)
		}
	}
	return false
}
