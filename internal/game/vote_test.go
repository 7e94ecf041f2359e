package game

import "testing"

// Five seats, one impostor, classic mode: voting out the impostor on
// round one ends the game for the citizens, and the impostor banks
// 1 × 25 survival points.
func TestVoteOutLastImpostorCitizensWin(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)

	out := e.ResolveVote(s, "p-0")
	if out.Kind != OutcomeGameOver {
		t.Fatalf("outcome = %s, want game over", out.Kind)
	}
	if out.Winner != WinnerCitizens || s.Winner != WinnerCitizens {
		t.Fatalf("winner = %q, want citizens", s.Winner)
	}
	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want GAME_OVER", s.Phase)
	}

	scores := Scores{}.ApplyResult(s.Winner, s.Players, s.CurrentRound)
	if scores["player0"] != 25 {
		t.Errorf("impostor score = %d, want 25 (1 round × 25)", scores["player0"])
	}
	if scores["player1"] != 100 {
		t.Errorf("citizen score = %d, want 100", scores["player1"])
	}
}

func TestVoteOutImpostorOthersRemain(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)

	out := e.ResolveVote(s, "p-0")
	if out.Kind != OutcomeImpostorEliminated {
		t.Fatalf("outcome = %s, want impostor eliminated", out.Kind)
	}
	if out.ImpostorsLeft != 1 {
		t.Errorf("impostors left = %d, want 1", out.ImpostorsLeft)
	}
	if s.Phase == PhaseGameOver {
		t.Fatal("game ended with an impostor still alive")
	}
	if !s.Players[0].IsDead {
		t.Fatal("victim not marked dead")
	}
}

// Four seats, one impostor, one undercover, chaos mode. First wrong
// vote leaves 3 living vs 1 impostor, so the game continues. Second
// wrong vote drops living players to 2, and impostors win on the threshold rule
// regardless of count.
func TestInnocentEliminationThresholds(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeChaos, RoleImpostor, RoleUndercover, RoleCitizen, RoleCitizen)

	out := e.ResolveVote(s, "p-2")
	if out.Kind != OutcomeInnocentEliminated {
		t.Fatalf("first vote: outcome = %s, want innocent eliminated", out.Kind)
	}
	if out.ImpostorsLeft != 1 || out.CitizensLeft != 2 {
		t.Errorf("first vote: got %d impostors / %d citizens left, want 1/2", out.ImpostorsLeft, out.CitizensLeft)
	}

	out = e.ResolveVote(s, "p-3")
	if out.Kind != OutcomeGameOver || out.Winner != WinnerImpostor {
		t.Fatalf("second vote: outcome = %s winner = %q, want impostor win at two living players", out.Kind, out.Winner)
	}
}

func TestInnocentVoteUndercoverNearMiss(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeChaos, RoleImpostor, RoleUndercover, RoleCitizen, RoleCitizen, RoleCitizen)

	out := e.ResolveVote(s, "p-1")
	if out.Kind != OutcomeInnocentEliminated {
		t.Fatalf("outcome = %s, want innocent eliminated", out.Kind)
	}
	if out.Victim == nil || out.Victim.Role != RoleUndercover {
		t.Fatal("outcome should carry the undercover victim for the near-miss result")
	}
}

// The count rule compares living impostors against ALL living players,
// impostors included. Two impostors against one citizen therefore
// continue: the win lands on the next elimination via the two-player
// floor. Only an all-impostor survivor set trips the count rule on its
// own.
func TestImpostorsOutnumberRule(t *testing.T) {
	t.Run("two versus one continues", func(t *testing.T) {
		e := testEngine(1)
		s := testSession(ModeClassic, RoleImpostor, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)

		if out := e.ResolveVote(s, "p-2"); out.Kind != OutcomeInnocentEliminated {
			t.Fatalf("first vote: outcome = %s, want continue", out.Kind)
		}
		out := e.ResolveVote(s, "p-3")
		if out.Kind != OutcomeInnocentEliminated {
			t.Fatalf("second vote: outcome = %s, want continue at 2 impostors vs 1 citizen", out.Kind)
		}
		out = e.ResolveVote(s, "p-4")
		if out.Kind != OutcomeGameOver || out.Winner != WinnerImpostor {
			t.Fatalf("third vote: outcome = %s, want impostor win at the two-player floor", out.Kind)
		}
	})

	t.Run("all impostors alive ends above the floor", func(t *testing.T) {
		e := testEngine(1)
		s := testSession(ModeClassic, RoleImpostor, RoleImpostor, RoleImpostor, RoleCitizen, RoleCitizen)

		if out := e.ResolveVote(s, "p-3"); out.Kind != OutcomeInnocentEliminated {
			t.Fatalf("first vote: outcome = %s, want continue", out.Kind)
		}
		out := e.ResolveVote(s, "p-4")
		if out.Kind != OutcomeGameOver || out.Winner != WinnerImpostor {
			t.Fatalf("outcome = %s winner = %q, want impostor win with three impostors standing", out.Kind, out.Winner)
		}
	})
}

func TestResolveVoteIgnoresBadIDs(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)
	s.Players[1].IsDead = true

	if out := e.ResolveVote(s, "p-1"); out.Kind != OutcomeNone {
		t.Errorf("vote for a dead player resolved as %s, want no-op", out.Kind)
	}
	if out := e.ResolveVote(s, "ghost"); out.Kind != OutcomeNone {
		t.Errorf("vote for an unknown id resolved as %s, want no-op", out.Kind)
	}
	if !s.Players[1].IsDead {
		t.Error("isDead flipped back to false")
	}
}

func TestCastVoteReplacesRevote(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)
	e.OpenVoting(s)
	if s.Phase != PhaseVotingPass {
		t.Fatalf("phase = %s, want VOTING_PASS", s.Phase)
	}

	if done := e.CastVote(s, "p-1", "p-0"); done {
		t.Fatal("ballot complete after a single vote")
	}
	// Changed mind: the later vote replaces, never appends.
	e.CastVote(s, "p-1", "p-2")
	if got := s.Votes["p-1"]; got != "p-2" {
		t.Fatalf("revote recorded %q, want p-2", got)
	}
	if len(s.Votes) != 1 {
		t.Fatalf("ballot holds %d entries after a revote, want 1", len(s.Votes))
	}

	e.CastVote(s, "p-0", "p-1")
	e.CastVote(s, "p-2", "p-0")
	done := e.CastVote(s, "p-3", "p-0")
	if !done {
		t.Fatal("ballot not complete after every living player voted")
	}
	if s.Phase != PhaseVotingReveal {
		t.Fatalf("phase = %s, want VOTING_REVEAL", s.Phase)
	}
}

func TestResolveBallotPlurality(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)
	e.OpenVoting(s)
	e.CastVote(s, "p-1", "p-0")
	e.CastVote(s, "p-2", "p-0")
	e.CastVote(s, "p-3", "p-0")
	e.CastVote(s, "p-0", "p-1")

	out := e.ResolveBallot(s)
	if out.Kind != OutcomeGameOver || out.Winner != WinnerCitizens {
		t.Fatalf("outcome = %s, want the 3-1 plurality to take out the impostor", out.Kind)
	}
	if len(out.TiedIDs) != 0 {
		t.Errorf("clean plurality flagged as a tie: %v", out.TiedIDs)
	}
}

// Four living voters split 2-2: the resolver must pick either candidate
// uniformly at random, and both outcomes must show up over many runs.
func TestResolveBallotTieBreak(t *testing.T) {
	e := testEngine(5)
	victims := map[string]int{}

	for i := 0; i < 200; i++ {
		s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)
		e.OpenVoting(s)
		e.CastVote(s, "p-0", "p-1")
		e.CastVote(s, "p-1", "p-0")
		e.CastVote(s, "p-2", "p-1")
		e.CastVote(s, "p-3", "p-0")

		out := e.ResolveBallot(s)
		if out.Kind == OutcomeNone {
			t.Fatal("tied ballot resolved to a no-op")
		}
		if len(out.TiedIDs) != 2 {
			t.Fatalf("tied ballot reported tiedIds %v, want both candidates", out.TiedIDs)
		}
		victims[out.Victim.ID]++
	}

	if victims["p-0"] == 0 || victims["p-1"] == 0 {
		t.Fatalf("tie-break never chose one side over 200 runs: %v", victims)
	}
}

func TestCastVoteRejectsDeadVoterAndVictim(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeClassic, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)
	s.Players[2].IsDead = true
	e.OpenVoting(s)

	e.CastVote(s, "p-2", "p-0")
	if len(s.Votes) != 0 {
		t.Error("dead voter's ballot was recorded")
	}
	e.CastVote(s, "p-1", "p-2")
	if len(s.Votes) != 0 {
		t.Error("vote for a dead victim was recorded")
	}

	// Ballot completes with just the three living voters.
	e.CastVote(s, "p-0", "p-1")
	e.CastVote(s, "p-1", "p-0")
	done := e.CastVote(s, "p-3", "p-0")
	if !done {
		t.Fatal("ballot should complete once the living players have voted")
	}
}
