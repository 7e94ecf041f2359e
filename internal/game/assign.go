package game

import "fmt"

// History counts how many times each named player has been the
// impostor across games. It feeds the weighted draw so the role rotates
// instead of piling onto the same person.
type History map[string]int

// assignRoles partitions names into impostors, undercover and citizens.
// Impostors are drawn without replacement with weight 1/(timesImpostor+1),
// so players who have been impostor less often are proportionally more
// likely to be picked. The draw mutates history in place.
func (e *Engine) assignRoles(names []string, cfg Config, w Words, history History) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{
			ID:   playerID(i),
			Name: name,
			Role: RoleCitizen,
			Word: w.Secret,
		}
	}

	pool := make([]int, len(names))
	for i := range pool {
		pool[i] = i
	}

	for c := 0; c < cfg.ImpostorCount && len(pool) > 0; c++ {
		weights := make([]float64, len(pool))
		total := 0.0
		for i, idx := range pool {
			weights[i] = 1.0 / float64(history[names[idx]]+1)
			total += weights[i]
		}
		// Cumulative-sum walk with a random threshold.
		r := e.rng.Float64() * total
		chosen := 0
		for i, w := range weights {
			r -= w
			if r <= 0 {
				chosen = i
				break
			}
		}
		idx := pool[chosen]
		pool = append(pool[:chosen], pool[chosen+1:]...)

		players[idx].Role = RoleImpostor
		players[idx].Word = ""
		history[names[idx]]++
	}

	// Uniform shuffle of the survivors, then the first undercoverCount
	// become undercover. Caps silently if the count exceeds the pool.
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for c := 0; c < cfg.UndercoverCount && c < len(pool); c++ {
		players[pool[c]].Role = RoleUndercover
		players[pool[c]].Word = w.Undercover
	}

	return players
}

func playerID(i int) string {
	return fmt.Sprintf("p-%d", i)
}
