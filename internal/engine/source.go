package engine

import "github.com/vovakirdan/tui-flappy/internal/core"

// Queue is a Source fed by a backend's own event callbacks. It is meant for
// backends that deliver events on the same goroutine that ticks the driver.
type Queue struct {
	events []core.Event
}

// Push appends an event for the next Poll.
func (q *Queue) Push(e core.Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Poll returns the pending events and empties the queue.
func (q *Queue) Poll() []core.Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
