package game

// Scores is the cross-session point ledger, keyed by player name so a
// recurring human accumulates points over replays. It is only ever
// added to; clearing it is an explicit user action.
type Scores map[string]int

// ApplyResult credits every seat for the finished game and returns the
// ledger for chaining.
//
//	winner    role                 points
//	citizens  citizen              100
//	citizens  undercover alive     150
//	citizens  undercover dead      50
//	citizens  impostor             roundsSurvived × 25
//	impostor  impostor             100 + roundsSurvived × 50
//	impostor  undercover alive     25
//	impostor  undercover dead      0
//	impostor  citizen              0
func (sc Scores) ApplyResult(winner Winner, players []*Player, roundsSurvived int) Scores {
	for _, p := range players {
		if winner == WinnerCitizens {
			switch p.Role {
			case RoleCitizen:
				sc[p.Name] += 100
			case RoleUndercover:
				if p.IsDead {
					sc[p.Name] += 50
				} else {
					sc[p.Name] += 150
				}
			case RoleImpostor:
				sc[p.Name] += roundsSurvived * 25
			}
		} else {
			switch p.Role {
			case RoleImpostor:
				sc[p.Name] += 100 + roundsSurvived*50
			case RoleUndercover:
				if !p.IsDead {
					sc[p.Name] += 25
				}
			case RoleCitizen:
				// Losing citizens score nothing.
				sc[p.Name] += 0
			}
		}
	}
	return sc
}
