package storage

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Journal records finished rounds from one game loop into a Store.
// Write failures are logged and otherwise ignored so the loop keeps running.
type Journal struct {
	store   *Store
	backend string
	player  string
	logger  *log.Logger
	now     func() time.Time
}

// NewJournal creates a journal writing to store, tagging every round with the
// backend and player names.
func NewJournal(store *Store, backend, player string, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Default()
	}
	return &Journal{
		store:   store,
		backend: backend,
		player:  player,
		logger:  logger,
		now:     time.Now,
	}
}

// RecordRound implements engine.Recorder.
func (j *Journal) RecordRound(r engine.Round) {
	id, err := j.store.SaveRound(Round{
		Score:     r.Score,
		HighScore: r.HighScore,
		Ticks:     r.Ticks,
		Cause:     r.Cause.String(),
		Backend:   j.backend,
		Player:    j.player,
		EndedAt:   j.now(),
	})
	if err != nil {
		j.logger.Warn("journal write failed", "err", err)
		return
	}
	j.logger.Debug("round journaled", "id", id, "score", r.Score)
}

var _ engine.Recorder = (*Journal)(nil)
