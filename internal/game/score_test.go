package game

import "testing"

func TestApplyResultScoringTable(t *testing.T) {
	players := []*Player{
		{Name: "citizen", Role: RoleCitizen},
		{Name: "underAlive", Role: RoleUndercover},
		{Name: "underDead", Role: RoleUndercover, IsDead: true},
		{Name: "impostor", Role: RoleImpostor},
	}

	t.Run("citizens win", func(t *testing.T) {
		sc := Scores{}.ApplyResult(WinnerCitizens, players, 3)
		want := map[string]int{
			"citizen":    100,
			"underAlive": 150,
			"underDead":  50,
			"impostor":   75, // 3 rounds × 25
		}
		for name, pts := range want {
			if sc[name] != pts {
				t.Errorf("%s = %d, want %d", name, sc[name], pts)
			}
		}
	})

	t.Run("impostor wins", func(t *testing.T) {
		sc := Scores{}.ApplyResult(WinnerImpostor, players, 3)
		want := map[string]int{
			"citizen":    0,
			"underAlive": 25,
			"underDead":  0,
			"impostor":   250, // 100 + 3 rounds × 50
		}
		for name, pts := range want {
			if sc[name] != pts {
				t.Errorf("%s = %d, want %d", name, sc[name], pts)
			}
		}
	})
}

// Points accumulate across games; the ledger is never implicitly reset.
func TestScoresAccumulate(t *testing.T) {
	players := []*Player{{Name: "ana", Role: RoleCitizen}}
	sc := Scores{"ana": 40}
	sc.ApplyResult(WinnerCitizens, players, 1)
	sc.ApplyResult(WinnerCitizens, players, 1)
	if sc["ana"] != 240 {
		t.Fatalf("ana = %d, want 40 + 100 + 100", sc["ana"])
	}
}
