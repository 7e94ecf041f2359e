package server

import (
	"net/http"

	"github.com/ncastellano/impostor/internal/words"
)

func handleGetScores(ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ledgers.Scores(r.Context()))
	}
}

// handleResetScores wipes the whole score ledger. This is the only way
// scores ever go away.
func handleResetScores(ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ledgers.ResetScores(r.Context())
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func handleGetPreferences(ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ledgers.Preferences(r.Context()))
	}
}

func handlePutPreferences(ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs Preferences
		if err := readJSON(r, &prefs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ledgers.SavePreferences(r.Context(), prefs)
		writeJSON(w, http.StatusOK, prefs)
	}
}

// handleThemes lists the selectable word themes.
func handleThemes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, words.Themes())
	}
}
