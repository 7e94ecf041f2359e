package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, rooms *Rooms, ledgers *Ledgers, db Pinger, publicURL, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Impostor API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/themes", handleThemes())
		r.Get("/scores", handleGetScores(ledgers))
		r.Post("/scores/reset", handleResetScores(ledgers))
		r.Get("/preferences", handleGetPreferences(ledgers))
		r.Put("/preferences", handlePutPreferences(ledgers))

		r.Post("/rooms", handleCreateRoom(rooms))

		r.Route("/rooms/{code}", func(r chi.Router) {
			r.Use(roomMiddleware(rooms))
			r.Get("/", handleRoomLookup())
			r.Post("/join", handleJoin(rooms, broker))
			r.Get("/qr", handleRoomQR(publicURL))
			r.Get("/events", handleEvents(broker))

			// Authenticated intents. The member is resolved from the
			// Bearer token minted on join.
			r.Group(func(r chi.Router) {
				r.Use(memberMiddleware())
				r.Get("/state", handleRoomState())
				r.Post("/leave", handleLeave(rooms, broker))
				r.Post("/start", handleStartGame(rooms, broker, ledgers))
				r.Post("/voting/open", handleOpenVoting(rooms, broker))
				r.Post("/voting/cast", handleCastVote(rooms, broker, ledgers))
				r.Post("/voting/resolve", handleResolveVote(rooms, broker, ledgers))
				r.Post("/guess", handleLastStandGuess(rooms, broker, ledgers))
				r.Post("/continue", handleContinueRound(rooms, broker, ledgers))
				r.Post("/replay", handleReplay(rooms, broker, ledgers))
				r.Post("/reset", handleResetGame(rooms, broker, ledgers))
			})
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
