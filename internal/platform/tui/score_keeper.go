package tui

import (
	"github.com/dperique/invaders/internal/invaders"
	"github.com/dperique/invaders/internal/storage"
)

// StoreScoreKeeper backs the game's high score with the SQLite store. The
// game pushes a new record the moment it is beaten, so writes happen on
// the tick path and must never block or print: failures are swallowed and
// the in-memory record carries the session.
type StoreScoreKeeper struct {
	store *storage.Store
}

var _ invaders.ScoreKeeper = (*StoreScoreKeeper)(nil)

// NewStoreScoreKeeper creates a keeper backed by the given store.
func NewStoreScoreKeeper(store *storage.Store) *StoreScoreKeeper {
	return &StoreScoreKeeper{store: store}
}

// HighScore returns the persisted record, or 0 when there is none.
func (k *StoreScoreKeeper) HighScore() int {
	score, err := k.store.HighScore(invaders.GameID)
	if err != nil {
		return 0
	}
	return score
}

// RecordHighScore persists a freshly beaten record.
func (k *StoreScoreKeeper) RecordHighScore(score int) {
	//nolint:errcheck // Best-effort write, the game continues regardless
	k.store.SetHighScore(invaders.GameID, score)
}
