package game

import "testing"

func TestHardcoreCatchEntersLastBullet(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeHardcore, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)

	out := e.ResolveVote(s, "p-0")
	if out.Kind != OutcomeLastStand {
		t.Fatalf("outcome = %s, want the last-stand reprieve", out.Kind)
	}
	if s.Phase != PhaseLastBullet {
		t.Fatalf("phase = %s, want LAST_BULLET", s.Phase)
	}
	if s.Winner != "" {
		t.Fatal("winner decided before the guess")
	}
}

// The guess comparison strips diacritics: "Fernét" matches "fernet" and
// steals the game for the impostors.
func TestLastStandGuessNormalization(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeHardcore, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)
	e.ResolveVote(s, "p-0")

	out := e.ResolveGuess(s, "  Fernét ")
	if out.Kind != OutcomeGameOver || out.Winner != WinnerImpostor {
		t.Fatalf("outcome = %s winner = %q, want the impostor steal", out.Kind, out.Winner)
	}
}

func TestLastStandMissLastImpostorCitizensWin(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeHardcore, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)
	e.ResolveVote(s, "p-0")

	out := e.ResolveGuess(s, "campari")
	if out.Kind != OutcomeGameOver || out.Winner != WinnerCitizens {
		t.Fatalf("outcome = %s winner = %q, want citizens once no impostor remains", out.Kind, out.Winner)
	}
}

func TestLastStandMissResumesDebate(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeHardcore, RoleImpostor, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen, RoleCitizen)
	e.ResolveVote(s, "p-0")

	out := e.ResolveGuess(s, "wrong")
	if out.Kind != OutcomeLastStandMiss {
		t.Fatalf("outcome = %s, want the miss result", out.Kind)
	}
	if out.ImpostorsLeft != 1 {
		t.Errorf("impostors left = %d, want 1", out.ImpostorsLeft)
	}
	if s.Phase != PhaseDebate {
		t.Fatalf("phase = %s, want play back at DEBATE", s.Phase)
	}
	if !s.Players[0].IsDead {
		t.Error("caught impostor revived by the miss")
	}
}

func TestResolveGuessOutsideLastBulletIgnored(t *testing.T) {
	e := testEngine(1)
	s := testSession(ModeHardcore, RoleImpostor, RoleCitizen, RoleCitizen, RoleCitizen)

	if out := e.ResolveGuess(s, "fernet"); out.Kind != OutcomeNone {
		t.Fatalf("guess during debate resolved as %s, want no-op", out.Kind)
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Fernét", "fernet"},
		{"  FERNET  ", "fernet"},
		{"Ñoquis", "noquis"},
		{"dulce de leche", "dulce de leche"},
		{"Café", "cafe"},
	}
	for _, tc := range cases {
		if got := normalizeWord(tc.in); got != tc.want {
			t.Errorf("normalizeWord(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
