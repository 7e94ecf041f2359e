// Package words supplies the (majority, minority) word pairs for a
// session, partitioned by theme, avoiding recent repeats through a
// persisted per-theme usage history.
package words

import "math/rand"

// Pair is one secret-word pairing: the majority word goes to citizens,
// the minority word to undercover players. The two are always distinct.
type Pair struct {
	Majority string `json:"majority"`
	Minority string `json:"minority"`
}

type Theme struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Pairs []Pair `json:"-"`
}

// DefaultThemeID backs the fallback when the selection resolves empty.
const DefaultThemeID = "argentina"

// Usage records, per theme, the majority words already dealt out.
type Usage map[string][]string

// Pool draws pairs for a set of themes. Draw mutates the usage map; the
// caller persists it between sessions.
type Pool struct {
	rng  *rand.Rand
	used Usage
}

func NewPool(rng *rand.Rand, used Usage) *Pool {
	if used == nil {
		used = Usage{}
	}
	return &Pool{rng: rng, used: used}
}

// Used exposes the usage history for persistence.
func (p *Pool) Used() Usage { return p.used }

type candidate struct {
	pair    Pair
	themeID string
}

// Draw picks a pair uniformly from the selected themes, skipping pairs
// whose majority word was already dealt for that theme. An exhausted
// pool is treated as fully available again instead of failing; an empty
// selection falls back to the default theme. The chosen majority word
// is recorded as used before returning.
func (p *Pool) Draw(themeIDs []string) (Pair, string) {
	var pool []candidate
	for _, id := range themeIDs {
		if t, ok := themeIndex[id]; ok {
			for _, pr := range t.Pairs {
				pool = append(pool, candidate{pair: pr, themeID: id})
			}
		}
	}
	if len(pool) == 0 {
		for _, pr := range themeIndex[DefaultThemeID].Pairs {
			pool = append(pool, candidate{pair: pr, themeID: DefaultThemeID})
		}
	}

	available := pool[:0:0]
	for _, c := range pool {
		if !contains(p.used[c.themeID], c.pair.Majority) {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	chosen := available[p.rng.Intn(len(available))]
	p.used[chosen.themeID] = append(p.used[chosen.themeID], chosen.pair.Majority)
	return chosen.pair, chosen.themeID
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Themes lists the available theme options in a stable order.
func Themes() []Theme {
	return themeList
}

// ThemeLabel resolves a theme id to its display label, falling back to
// the id itself for unknown ids.
func ThemeLabel(id string) string {
	if t, ok := themeIndex[id]; ok {
		return t.Label
	}
	return id
}
