package words

import (
	"math/rand"
	"testing"
)

func testPool(used Usage) *Pool {
	return NewPool(rand.New(rand.NewSource(1)), used)
}

func TestDrawRecordsUsage(t *testing.T) {
	p := testPool(nil)
	pair, themeID := p.Draw([]string{"comida"})

	if themeID != "comida" {
		t.Fatalf("themeID = %q, want comida", themeID)
	}
	if pair.Majority == "" || pair.Minority == "" || pair.Majority == pair.Minority {
		t.Fatalf("bad pair %+v", pair)
	}
	if used := p.Used()["comida"]; len(used) != 1 || used[0] != pair.Majority {
		t.Fatalf("usage history %v, want the drawn majority word", used)
	}
}

func TestDrawSkipsUsedWords(t *testing.T) {
	p := testPool(nil)
	seen := map[string]bool{}

	total := len(themeIndex["comida"].Pairs)
	for i := 0; i < total; i++ {
		pair, _ := p.Draw([]string{"comida"})
		if seen[pair.Majority] {
			t.Fatalf("majority word %q repeated before the pool was exhausted", pair.Majority)
		}
		seen[pair.Majority] = true
	}
}

// Once every pair has been dealt the whole pool becomes available
// again instead of failing.
func TestDrawResetsWhenExhausted(t *testing.T) {
	p := testPool(nil)
	total := len(themeIndex["famosos"].Pairs)
	for i := 0; i < total; i++ {
		p.Draw([]string{"famosos"})
	}

	pair, themeID := p.Draw([]string{"famosos"})
	if themeID != "famosos" || pair.Majority == "" {
		t.Fatalf("exhausted pool failed to reset: %+v %q", pair, themeID)
	}
}

func TestDrawFallsBackToDefaultTheme(t *testing.T) {
	p := testPool(nil)

	_, themeID := p.Draw([]string{"unknown-theme"})
	if themeID != DefaultThemeID {
		t.Fatalf("themeID = %q, want the %s fallback", themeID, DefaultThemeID)
	}

	_, themeID = p.Draw(nil)
	if themeID != DefaultThemeID {
		t.Fatalf("empty selection drew from %q, want the fallback", themeID)
	}
}

func TestDrawMixesSelectedThemes(t *testing.T) {
	p := testPool(nil)
	themes := map[string]bool{}
	for i := 0; i < 60; i++ {
		_, themeID := p.Draw([]string{"argentina", "cordoba"})
		themes[themeID] = true
	}
	if !themes["argentina"] || !themes["cordoba"] {
		t.Fatalf("60 draws over two themes hit only %v", themes)
	}
}

func TestThemePairsAreDistinct(t *testing.T) {
	for _, theme := range Themes() {
		for _, pair := range theme.Pairs {
			if pair.Majority == pair.Minority {
				t.Errorf("theme %s: pair %+v has identical words", theme.ID, pair)
			}
		}
	}
}
