package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ncastellano/impostor/internal/game"
	"github.com/ncastellano/impostor/internal/storage"
	"github.com/ncastellano/impostor/internal/words"
)

// Preferences are the persisted user toggles for the client shell.
type Preferences struct {
	Sound     bool `json:"sound"`
	Vibration bool `json:"vibration"`
}

func defaultPreferences() Preferences {
	return Preferences{Sound: true, Vibration: true}
}

// Ledgers owns the cross-session persisted state: the score ledger,
// the impostor history feeding the weighted draw, the per-theme word
// usage and the preference flags. Each entity loads independently with
// a corruption fallback, so one bad record never takes down the rest.
type Ledgers struct {
	mu     sync.Mutex
	kv     storage.KV
	logger *slog.Logger
}

func NewLedgers(kv storage.KV, logger *slog.Logger) *Ledgers {
	return &Ledgers{kv: kv, logger: logger}
}

func (l *Ledgers) Scores(ctx context.Context) game.Scores {
	l.mu.Lock()
	defer l.mu.Unlock()
	return storage.Load(ctx, l.kv, l.logger, storage.KeyScores, game.Scores{})
}

// ApplyResult credits the finished game into the score ledger.
func (l *Ledgers) ApplyResult(ctx context.Context, winner game.Winner, players []*game.Player, rounds int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	scores := storage.Load(ctx, l.kv, l.logger, storage.KeyScores, game.Scores{})
	scores.ApplyResult(winner, players, rounds)
	l.save(ctx, storage.KeyScores, scores)
}

// ResetScores wipes the entire score ledger. Only ever user-invoked.
func (l *Ledgers) ResetScores(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.kv.Delete(ctx, storage.KeyScores); err != nil {
		l.logger.Warn("resetting scores", "error", err)
	}
}

func (l *Ledgers) History(ctx context.Context) game.History {
	l.mu.Lock()
	defer l.mu.Unlock()
	return storage.Load(ctx, l.kv, l.logger, storage.KeyHistory, game.History{})
}

func (l *Ledgers) SaveHistory(ctx context.Context, h game.History) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.save(ctx, storage.KeyHistory, h)
}

// ResetHistory clears the impostor history. Happens on an explicit
// return to setup-from-scratch, never automatically; scores survive it.
func (l *Ledgers) ResetHistory(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.kv.Delete(ctx, storage.KeyHistory); err != nil {
		l.logger.Warn("resetting impostor history", "error", err)
	}
}

func (l *Ledgers) UsedWords(ctx context.Context) words.Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return storage.Load(ctx, l.kv, l.logger, storage.KeyUsedWords, words.Usage{})
}

func (l *Ledgers) SaveUsedWords(ctx context.Context, u words.Usage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.save(ctx, storage.KeyUsedWords, u)
}

func (l *Ledgers) Preferences(ctx context.Context) Preferences {
	l.mu.Lock()
	defer l.mu.Unlock()
	return storage.Load(ctx, l.kv, l.logger, storage.KeyPreferences, defaultPreferences())
}

func (l *Ledgers) SavePreferences(ctx context.Context, p Preferences) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.save(ctx, storage.KeyPreferences, p)
}

func (l *Ledgers) save(ctx context.Context, key string, v any) {
	if err := storage.Save(ctx, l.kv, key, v); err != nil {
		l.logger.Warn("saving ledger", "key", key, "error", err)
	}
}
