package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeWord folds a word for comparison: trimmed, lowercased, with
// combining diacritics stripped ("Fernét" matches "fernet").
func normalizeWord(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ResolveGuess settles the hardcore-mode last bullet. The caught
// impostor names the majority word: an exact match after normalization
// steals the game for the impostors; a miss re-counts the living
// impostors: none left means the citizens win, otherwise the caught
// one stays eliminated and play resumes at debate.
func (e *Engine) ResolveGuess(s *Session, guess string) Outcome {
	if s.Phase != PhaseLastBullet {
		return none()
	}

	if normalizeWord(guess) == normalizeWord(s.SecretWord) {
		return e.finish(s, WinnerImpostor)
	}

	remaining := s.livingImpostors()
	if remaining == 0 {
		return e.finish(s, WinnerCitizens)
	}
	s.Phase = PhaseDebate
	return Outcome{Kind: OutcomeLastStandMiss, ImpostorsLeft: remaining}
}
