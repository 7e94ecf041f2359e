// Package local drives the solo-device pass-and-play mode: one engine,
// one session, with the session snapshot and the ledgers persisted
// between app launches.
package local

import (
	"context"
	"log/slog"

	"github.com/ncastellano/impostor/internal/game"
	"github.com/ncastellano/impostor/internal/storage"
	"github.com/ncastellano/impostor/internal/words"
)

// App owns the single local session and its persistence. Not safe for
// concurrent use; pass-and-play is strictly sequential user actions.
type App struct {
	kv      storage.KV
	logger  *slog.Logger
	engine  *game.Engine
	session *game.Session
}

func NewApp(kv storage.KV, logger *slog.Logger, engine *game.Engine) *App {
	return &App{kv: kv, logger: logger, engine: engine}
}

// Session returns the active session, or nil between games.
func (a *App) Session() *game.Session { return a.session }

// Resume reloads an interrupted session from storage. A missing or
// corrupt snapshot just means there is nothing to resume.
func (a *App) Resume(ctx context.Context) *game.Session {
	s := storage.Load[*game.Session](ctx, a.kv, a.logger, storage.KeySession, nil)
	if s == nil || s.Phase == "" || s.Phase == game.PhaseSetup || s.Phase == game.PhaseGameOver {
		return nil
	}
	if s.Votes == nil {
		s.Votes = map[string]string{}
	}
	a.session = s
	return s
}

// StartSession draws a word pair, assigns roles against the persisted
// impostor history and opens the assignment reveal cycle.
func (a *App) StartSession(ctx context.Context, names []string, cfg game.Config) (*game.Session, error) {
	history := storage.Load(ctx, a.kv, a.logger, storage.KeyHistory, game.History{})
	used := storage.Load(ctx, a.kv, a.logger, storage.KeyUsedWords, words.Usage{})

	pool := words.NewPool(a.engine.Rand(), used)
	pair, themeID := pool.Draw(cfg.ThemeIDs)

	s, err := a.engine.Start(names, cfg, game.Words{
		Secret:     pair.Majority,
		Undercover: pair.Minority,
		Theme:      words.ThemeLabel(themeID),
	}, history)
	if err != nil {
		return nil, err
	}

	a.save(ctx, storage.KeyHistory, history)
	a.save(ctx, storage.KeyUsedWords, used)
	a.session = s
	a.persistSession(ctx)
	return s, nil
}

func (a *App) AdvanceAssignment(ctx context.Context) game.Outcome {
	return a.apply(ctx, func() game.Outcome { return a.engine.AdvanceAssignment(a.session) })
}

func (a *App) OpenVoting(ctx context.Context) game.Outcome {
	return a.apply(ctx, func() game.Outcome { return a.engine.OpenVoting(a.session) })
}

// CastVote records one pass-the-phone secret ballot; the completed
// ballot resolves immediately.
func (a *App) CastVote(ctx context.Context, voterID, victimID string) game.Outcome {
	return a.apply(ctx, func() game.Outcome {
		if a.engine.CastVote(a.session, voterID, victimID) {
			return a.engine.ResolveBallot(a.session)
		}
		return game.Outcome{Kind: game.OutcomeNone}
	})
}

// ResolveVote settles an open show-of-hands accusation.
func (a *App) ResolveVote(ctx context.Context, victimID string) game.Outcome {
	return a.apply(ctx, func() game.Outcome { return a.engine.ResolveVote(a.session, victimID) })
}

func (a *App) SubmitLastStandGuess(ctx context.Context, guess string) game.Outcome {
	return a.apply(ctx, func() game.Outcome { return a.engine.ResolveGuess(a.session, guess) })
}

func (a *App) ContinueRound(ctx context.Context) game.Outcome {
	return a.apply(ctx, func() game.Outcome { return a.engine.ContinueRound(a.session) })
}

// Replay rebuilds a fresh session for the same seats and config.
func (a *App) Replay(ctx context.Context) (*game.Session, error) {
	if a.session == nil {
		return nil, game.ErrWrongPhase
	}
	return a.StartSession(ctx, a.session.Names(), a.session.Config)
}

// EndToSetup discards the session and clears the impostor history so
// the weighted draw starts from a clean slate. The score ledger is kept;
// wiping it is a separate, explicit action.
func (a *App) EndToSetup(ctx context.Context) {
	a.session = nil
	if err := a.kv.Delete(ctx, storage.KeySession); err != nil {
		a.logger.Warn("clearing session snapshot", "error", err)
	}
	if err := a.kv.Delete(ctx, storage.KeyHistory); err != nil {
		a.logger.Warn("clearing impostor history", "error", err)
	}
}

func (a *App) Scores(ctx context.Context) game.Scores {
	return storage.Load(ctx, a.kv, a.logger, storage.KeyScores, game.Scores{})
}

// ResetScores wipes the whole ledger. User-invoked only.
func (a *App) ResetScores(ctx context.Context) {
	if err := a.kv.Delete(ctx, storage.KeyScores); err != nil {
		a.logger.Warn("resetting scores", "error", err)
	}
}

// apply runs one engine operation, persists the snapshot and, when the
// game just ended, credits the score ledger and drops the snapshot.
func (a *App) apply(ctx context.Context, op func() game.Outcome) game.Outcome {
	if a.session == nil {
		return game.Outcome{Kind: game.OutcomeNone}
	}
	out := op()

	if out.Kind == game.OutcomeGameOver {
		scores := a.Scores(ctx)
		scores.ApplyResult(out.Winner, a.session.Players, a.session.CurrentRound)
		a.save(ctx, storage.KeyScores, scores)
		if err := a.kv.Delete(ctx, storage.KeySession); err != nil {
			a.logger.Warn("clearing session snapshot", "error", err)
		}
		return out
	}

	a.persistSession(ctx)
	return out
}

func (a *App) persistSession(ctx context.Context) {
	a.save(ctx, storage.KeySession, a.session)
}

func (a *App) save(ctx context.Context, key string, v any) {
	if err := storage.Save(ctx, a.kv, key, v); err != nil {
		a.logger.Warn("saving entity", "key", key, "error", err)
	}
}
