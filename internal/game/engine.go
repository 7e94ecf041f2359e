package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Engine drives sessions. All randomness (impostor weighting, shuffles,
// tie-breaks, event rolls) flows through the injected rand so tests can
// seed determinism.
type Engine struct {
	rng *rand.Rand
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Rand exposes the engine's random source so collaborators (the word
// pool, tie-breaks outside the core) share one seedable stream.
func (e *Engine) Rand() *rand.Rand { return e.rng }

// NewSeededEngine builds an engine seeded from crypto-quality entropy.
func NewSeededEngine() *Engine {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Entropy read only fails on a broken platform; a zero seed
		// still produces a playable game.
		return NewEngine(rand.New(rand.NewSource(0)))
	}
	return NewEngine(rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))))
}

// Start builds a fresh session: validates the config, assigns roles
// (updating history in place) and enters the per-player assignment
// reveal cycle.
func (e *Engine) Start(names []string, cfg Config, w Words, history History) (*Session, error) {
	if err := cfg.Validate(len(names)); err != nil {
		return nil, err
	}

	players := e.assignRoles(names, cfg, w, history)

	timer := len(names) * 60
	if timer < 180 {
		timer = 180
	}

	return &Session{
		Phase:          PhaseAssignmentWait,
		Players:        players,
		Config:         cfg,
		Theme:          w.Theme,
		SecretWord:     w.Secret,
		UndercoverWord: w.Undercover,
		Votes:          map[string]string{},
		CurrentRound:   1,
		TimerBase:      timer,
	}, nil
}

// AdvanceAssignment steps the pass-the-phone reveal cycle: WAIT shows
// "pass to player N", REVEAL shows their role. After the last player it
// announces the round start (random starting player, random turn
// direction) exactly once, then drops into debate.
func (e *Engine) AdvanceAssignment(s *Session) Outcome {
	switch s.Phase {
	case PhaseAssignmentWait:
		s.Phase = PhaseAssignmentReveal
		return none()
	case PhaseAssignmentReveal:
		if s.CurrentPlayerIndex+1 < len(s.Players) {
			s.CurrentPlayerIndex++
			s.Phase = PhaseAssignmentWait
			return none()
		}
		if !s.RoundStartShown {
			alive := s.Alive()
			starter := alive[e.rng.Intn(len(alive))]
			dir := DirectionRight
			if e.rng.Float64() < 0.5 {
				dir = DirectionLeft
			}
			s.RoundStartShown = true
			s.StartingPlayer = starter.Name
			s.TurnDirection = dir
			s.Phase = PhaseDebate
			return Outcome{
				Kind:           OutcomeRoundStart,
				StartingPlayer: starter.Name,
				TurnDirection:  dir,
			}
		}
		s.Phase = PhaseDebate
		return none()
	default:
		return none()
	}
}

// SkipAssignment jumps past the pass-the-phone reveal cycle for online
// play, where every player sees their own card at once. It still emits
// the one-time round-start announcement.
func (e *Engine) SkipAssignment(s *Session) Outcome {
	if s.Phase != PhaseAssignmentWait && s.Phase != PhaseAssignmentReveal {
		return none()
	}
	s.CurrentPlayerIndex = len(s.Players) - 1
	s.Phase = PhaseAssignmentReveal
	return e.AdvanceAssignment(s)
}

// OpenVoting moves from debate into the configured voting stage and
// clears any leftover ballot state.
func (e *Engine) OpenVoting(s *Session) Outcome {
	if s.Phase != PhaseDebate {
		return none()
	}
	s.Votes = map[string]string{}
	s.VotingPlayerIndex = 0
	if s.Config.SecretVoting {
		s.Phase = PhaseVotingPass
	} else {
		s.Phase = PhaseVoting
	}
	return none()
}

// ContinueRound advances to the next round after a non-terminal
// resolution. Exceeding the round limit force-ends the game in the
// impostors' favor: a debate stalemate is their win condition. Otherwise
// the modifier engine gets its roll and play returns to debate.
func (e *Engine) ContinueRound(s *Session) Outcome {
	if s.Phase == PhaseGameOver {
		return none()
	}

	next := s.CurrentRound + 1
	if s.Config.MaxRounds > 0 && next > s.Config.MaxRounds {
		return e.finish(s, WinnerImpostor)
	}

	s.CurrentRound = next
	s.Phase = PhaseDebate

	ev, override := e.rollEvent(s.TimerBase)
	s.ActiveEvent = ev
	s.TimerOverride = override
	if ev != nil {
		return Outcome{Kind: OutcomeEventTriggered, Event: ev}
	}
	return Outcome{Kind: OutcomeRoundContinued}
}

// finish sets the terminal state. Winner is written exactly once; a
// second call is a no-op.
func (e *Engine) finish(s *Session, winner Winner) Outcome {
	if s.Phase == PhaseGameOver {
		return none()
	}
	s.Winner = winner
	s.Phase = PhaseGameOver
	s.ActiveEvent = nil
	s.TimerOverride = 0
	return Outcome{Kind: OutcomeGameOver, Winner: winner}
}

// Replay rebuilds a fresh session for the same seats and config,
// drawing new roles against the (shared, persistent) history.
func (e *Engine) Replay(s *Session, w Words, history History) (*Session, error) {
	return e.Start(s.Names(), s.Config, w, history)
}
