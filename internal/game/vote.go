package game

// ResolveVote eliminates the accused player and evaluates the win
// conditions. Exactly one branch applies depending on the victim's
// actual role, so the outcome is never ambiguous:
//
//   - impostor out, hardcore mode: the session enters the last-bullet
//     guess instead of resolving;
//   - impostor out, none left: citizens win;
//   - impostor out, others remain: informational, game continues;
//   - innocent out: impostors win when at most two players remain or
//     when living impostors match or outnumber the rest; otherwise the
//     game continues with a wrong-guess result.
//
// Votes for unknown or already-dead ids are ignored rather than allowed
// to corrupt state.
func (e *Engine) ResolveVote(s *Session, victimID string) Outcome {
	if s.Phase == PhaseGameOver {
		return none()
	}
	victim := s.PlayerByID(victimID)
	if victim == nil || victim.IsDead {
		return none()
	}

	victim.IsDead = true

	if victim.Role == RoleImpostor {
		if s.Config.Mode == ModeHardcore {
			s.Phase = PhaseLastBullet
			return Outcome{Kind: OutcomeLastStand, Victim: victim}
		}

		remaining := s.livingImpostors()
		if remaining == 0 {
			out := e.finish(s, WinnerCitizens)
			out.Victim = victim
			return out
		}
		return Outcome{
			Kind:          OutcomeImpostorEliminated,
			Victim:        victim,
			ImpostorsLeft: remaining,
		}
	}

	living := len(s.Alive())
	impostors := s.livingImpostors()
	if living <= 2 || impostors >= living {
		out := e.finish(s, WinnerImpostor)
		out.Victim = victim
		return out
	}
	return Outcome{
		Kind:          OutcomeInnocentEliminated,
		Victim:        victim,
		ImpostorsLeft: impostors,
		CitizensLeft:  living - impostors,
	}
}

// CastVote records one secret ballot. A changed vote from the same
// voter replaces the earlier entry, never double-counts. When every
// living player has voted the session moves to the reveal stage.
// Returns true once the ballot is complete.
func (e *Engine) CastVote(s *Session, voterID, victimID string) bool {
	if s.Phase != PhaseVotingPass {
		return false
	}
	voter := s.PlayerByID(voterID)
	victim := s.PlayerByID(victimID)
	if voter == nil || voter.IsDead || victim == nil || victim.IsDead {
		return false
	}

	if _, revote := s.Votes[voterID]; !revote {
		s.VotingPlayerIndex++
	}
	s.Votes[voterID] = victimID

	for _, p := range s.Alive() {
		if _, ok := s.Votes[p.ID]; !ok {
			return false
		}
	}
	s.Phase = PhaseVotingReveal
	return true
}

// ResolveBallot tallies the collected votes, breaks ties uniformly at
// random among the leading candidates and feeds the plurality victim
// into ResolveVote.
func (e *Engine) ResolveBallot(s *Session) Outcome {
	if s.Phase != PhaseVotingReveal || len(s.Votes) == 0 {
		return none()
	}

	counts := map[string]int{}
	for _, victimID := range s.Votes {
		counts[victimID]++
	}

	max := 0
	var leaders []string
	for id, n := range counts {
		switch {
		case n > max:
			max = n
			leaders = []string{id}
		case n == max:
			leaders = append(leaders, id)
		}
	}

	victimID := leaders[0]
	tie := len(leaders) > 1
	if tie {
		victimID = leaders[e.rng.Intn(len(leaders))]
	}

	out := e.ResolveVote(s, victimID)
	if tie && out.Kind != OutcomeNone {
		out.TiedIDs = leaders
	}
	return out
}
