package game

import (
	"fmt"
	"math/rand"
)

func testEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

// testSession builds a mid-debate session with the given roles seated
// in order. Citizens and undercover get their words, impostors none.
func testSession(mode Mode, roles ...Role) *Session {
	players := make([]*Player, len(roles))
	impostors := 0
	for i, role := range roles {
		p := &Player{ID: fmt.Sprintf("p-%d", i), Name: fmt.Sprintf("player%d", i), Role: role}
		switch role {
		case RoleCitizen:
			p.Word = "fernet"
		case RoleUndercover:
			p.Word = "campari"
		case RoleImpostor:
			impostors++
		}
		players[i] = p
	}
	return &Session{
		Phase:   PhaseDebate,
		Players: players,
		Config: Config{
			ImpostorCount: impostors,
			Mode:          mode,
			SecretVoting:  true,
		},
		SecretWord:     "fernet",
		UndercoverWord: "campari",
		Votes:          map[string]string{},
		CurrentRound:   1,
		TimerBase:      300,
	}
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("player%d", i)
	}
	return out
}
