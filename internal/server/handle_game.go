package server

import (
	"errors"
	"net/http"

	"github.com/ncastellano/impostor/internal/game"
	"github.com/ncastellano/impostor/internal/words"
)

type StartGameRequest struct {
	ThemeIDs        []string  `json:"themeIds"`
	ImpostorCount   int       `json:"impostorCount"`
	UndercoverCount int       `json:"undercoverCount"`
	Mode            game.Mode `json:"mode"`
	MaxRounds       int       `json:"maxRounds,omitempty"`
	SecretVoting    bool      `json:"secretVoting"`
}

// handleStartGame assigns roles and opens the session. Host only: the
// host is the turn authority for phase-advancing intents.
func handleStartGame(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		member := memberFrom(r)
		ctx := r.Context()

		history := ledgers.History(ctx)
		used := ledgers.UsedWords(ctx)

		var (
			started bool
			errCode int
			errMsg  string
		)
		room.locked(func() {
			if member.ID != room.HostID {
				errCode, errMsg = http.StatusForbidden, "only the host can start the game"
				return
			}
			if room.Session != nil && room.Session.Phase != game.PhaseGameOver {
				errCode, errMsg = http.StatusConflict, "game already running"
				return
			}

			cfg := game.Config{
				ThemeIDs:        req.ThemeIDs,
				ImpostorCount:   req.ImpostorCount,
				UndercoverCount: req.UndercoverCount,
				Mode:            req.Mode,
				MaxRounds:       req.MaxRounds,
				SecretVoting:    req.SecretVoting,
			}

			names := make([]string, len(room.Members))
			for i, m := range room.Members {
				names[i] = m.Name
			}

			pool := words.NewPool(room.engine.Rand(), used)
			pair, themeID := pool.Draw(req.ThemeIDs)

			sess, err := room.engine.Start(names, cfg, game.Words{
				Secret:     pair.Majority,
				Undercover: pair.Minority,
				Theme:      words.ThemeLabel(themeID),
			}, history)
			if err != nil {
				if errors.Is(err, game.ErrInvalidConfig) {
					errCode, errMsg = http.StatusBadRequest, "invalid role configuration"
				} else {
					errCode, errMsg = http.StatusInternalServerError, "internal error"
				}
				return
			}

			// Carry the lobby identity into the assigned seats.
			for i, m := range room.Members {
				sess.Players[i].ID = m.ID
				sess.Players[i].Avatar = m.Avatar
				sess.Players[i].Color = m.Color
			}
			// Online mode has no pass-the-phone cycle; everyone sees
			// their own card at once.
			room.engine.SkipAssignment(sess)

			room.Session = sess
			started = true
		})
		if errMsg != "" {
			writeError(w, errCode, errMsg)
			return
		}

		if started {
			ledgers.SaveHistory(ctx, history)
			ledgers.SaveUsedWords(ctx, used)
			rooms.persist(ctx, room)
			broker.Publish(room.Code, RoomEvent{Type: "game_started", Phase: string(game.PhaseDebate)})
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// handleRoomState returns the room as the requesting player may see it.
func handleRoomState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		member := memberFrom(r)

		var snap RoomSnapshot
		room.locked(func() { snap = room.snapshot(member.ID) })
		writeJSON(w, http.StatusOK, snap)
	}
}

type VoteRequest struct {
	VictimID string `json:"victimId"`
}

type OutcomeResponse struct {
	Outcome game.Outcome `json:"outcome"`
	Phase   game.Phase   `json:"phase"`
}

// handleOpenVoting moves the room from debate into the configured
// voting stage. Host only.
func handleOpenVoting(rooms *Rooms, broker *Broker) http.HandlerFunc {
	return hostPhaseHandler(rooms, broker, "voting_opened", func(room *Room, _ VoteRequest) game.Outcome {
		return room.engine.OpenVoting(room.Session)
	})
}

// handleCastVote records one secret ballot. Re-votes replace the
// earlier entry. Once the last living player has voted the room moves
// to the reveal stage and the ballot resolves.
func handleCastVote(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		member := memberFrom(r)

		var (
			out      game.Outcome
			complete bool
			phase    game.Phase
			noGame   bool
		)
		room.locked(func() {
			if room.Session == nil {
				noGame = true
				return
			}
			complete = room.engine.CastVote(room.Session, member.ID, req.VictimID)
			if complete {
				out = room.engine.ResolveBallot(room.Session)
			}
			phase = room.Session.Phase
		})
		if noGame {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}

		finishIfOver(r, rooms, ledgers, room, out)
		rooms.persist(r.Context(), room)
		if complete {
			broker.Publish(room.Code, RoomEvent{Type: "ballot_resolved", Phase: string(phase)})
		} else {
			broker.Publish(room.Code, RoomEvent{Type: "vote_cast", PlayerName: member.Name})
		}
		writeJSON(w, http.StatusOK, OutcomeResponse{Outcome: out, Phase: phase})
	}
}

// handleResolveVote settles an open (show-of-hands) accusation directly.
// Host only.
func handleResolveVote(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return hostOutcomeHandler(rooms, broker, ledgers, "vote_resolved", func(room *Room, req VoteRequest) game.Outcome {
		return room.engine.ResolveVote(room.Session, req.VictimID)
	})
}

type GuessRequest struct {
	Guess string `json:"guess"`
}

// handleLastStandGuess settles the hardcore-mode word guess. Only the
// caught impostor may fire it.
func handleLastStandGuess(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room := roomFrom(r)
		member := memberFrom(r)

		var (
			out     game.Outcome
			phase   game.Phase
			errCode int
			errMsg  string
		)
		room.locked(func() {
			if room.Session == nil {
				errCode, errMsg = http.StatusConflict, "no game in progress"
				return
			}
			p := room.Session.PlayerByID(member.ID)
			// Only the eliminated impostor holds the last bullet; living
			// teammates don't get to fire it for them.
			if p == nil || p.Role != game.RoleImpostor || !p.IsDead {
				errCode, errMsg = http.StatusForbidden, "only the caught impostor can guess"
				return
			}
			out = room.engine.ResolveGuess(room.Session, req.Guess)
			phase = room.Session.Phase
		})
		if errMsg != "" {
			writeError(w, errCode, errMsg)
			return
		}

		finishIfOver(r, rooms, ledgers, room, out)
		rooms.persist(r.Context(), room)
		broker.Publish(room.Code, RoomEvent{Type: "last_stand_resolved", Phase: string(phase)})
		writeJSON(w, http.StatusOK, OutcomeResponse{Outcome: out, Phase: phase})
	}
}

// handleContinueRound advances to the next round after a non-terminal
// resolution. Host only.
func handleContinueRound(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return hostOutcomeHandler(rooms, broker, ledgers, "round_continued", func(room *Room, _ VoteRequest) game.Outcome {
		return room.engine.ContinueRound(room.Session)
	})
}

// handleReplay rebuilds a fresh session for the same roster. Host only.
func handleReplay(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		member := memberFrom(r)
		ctx := r.Context()

		history := ledgers.History(ctx)
		used := ledgers.UsedWords(ctx)

		var (
			replayed bool
			errCode  int
			errMsg   string
		)
		room.locked(func() {
			if member.ID != room.HostID {
				errCode, errMsg = http.StatusForbidden, "only the host can replay"
				return
			}
			if room.Session == nil {
				errCode, errMsg = http.StatusConflict, "no game to replay"
				return
			}

			pool := words.NewPool(room.engine.Rand(), used)
			pair, themeID := pool.Draw(room.Session.Config.ThemeIDs)

			sess, err := room.engine.Replay(room.Session, game.Words{
				Secret:     pair.Majority,
				Undercover: pair.Minority,
				Theme:      words.ThemeLabel(themeID),
			}, history)
			if err != nil {
				errCode, errMsg = http.StatusInternalServerError, "internal error"
				return
			}
			for i, m := range room.Members {
				sess.Players[i].ID = m.ID
				sess.Players[i].Avatar = m.Avatar
				sess.Players[i].Color = m.Color
			}
			room.engine.SkipAssignment(sess)
			room.Session = sess
			replayed = true
		})
		if errMsg != "" {
			writeError(w, errCode, errMsg)
			return
		}

		if replayed {
			ledgers.SaveHistory(ctx, history)
			ledgers.SaveUsedWords(ctx, used)
			rooms.persist(ctx, room)
			broker.Publish(room.Code, RoomEvent{Type: "game_started", Phase: string(game.PhaseDebate)})
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// handleResetGame discards the session and returns the room to the
// lobby. Clears the impostor history (the weighted-draw slate starts
// over) but keeps the score ledger; scores only ever reset explicitly.
func handleResetGame(rooms *Rooms, broker *Broker, ledgers *Ledgers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		member := memberFrom(r)

		var notHost bool
		room.locked(func() {
			if member.ID != room.HostID {
				notHost = true
				return
			}
			room.Session = nil
		})
		if notHost {
			writeError(w, http.StatusForbidden, "only the host can reset")
			return
		}

		ledgers.ResetHistory(r.Context())
		rooms.persist(r.Context(), room)
		broker.Publish(room.Code, RoomEvent{Type: "game_reset"})
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// hostOutcomeHandler wraps the common shape of host-only intents that
// run one engine operation and may finish the game.
func hostOutcomeHandler(rooms *Rooms, broker *Broker, ledgers *Ledgers, eventType string, op func(*Room, VoteRequest) game.Outcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		room := roomFrom(r)
		member := memberFrom(r)

		var (
			out     game.Outcome
			phase   game.Phase
			errCode int
			errMsg  string
		)
		room.locked(func() {
			if member.ID != room.HostID {
				errCode, errMsg = http.StatusForbidden, "host only"
				return
			}
			if room.Session == nil {
				errCode, errMsg = http.StatusConflict, "no game in progress"
				return
			}
			out = op(room, req)
			phase = room.Session.Phase
		})
		if errMsg != "" {
			writeError(w, errCode, errMsg)
			return
		}

		finishIfOver(r, rooms, ledgers, room, out)
		rooms.persist(r.Context(), room)
		broker.Publish(room.Code, RoomEvent{Type: eventType, Phase: string(phase)})
		writeJSON(w, http.StatusOK, OutcomeResponse{Outcome: out, Phase: phase})
	}
}

// hostPhaseHandler is hostOutcomeHandler for intents that can never end
// the game.
func hostPhaseHandler(rooms *Rooms, broker *Broker, eventType string, op func(*Room, VoteRequest) game.Outcome) http.HandlerFunc {
	return hostOutcomeHandler(rooms, broker, nil, eventType, op)
}

// finishIfOver credits the score ledger once when an outcome closed the
// game.
func finishIfOver(r *http.Request, rooms *Rooms, ledgers *Ledgers, room *Room, out game.Outcome) {
	if out.Kind != game.OutcomeGameOver || ledgers == nil {
		return
	}
	var (
		players []*game.Player
		rounds  int
	)
	room.locked(func() {
		// A concurrent reset may have dropped the session since the
		// operation released the lock.
		if room.Session == nil {
			return
		}
		players = room.Session.Players
		rounds = room.Session.CurrentRound
	})
	if players == nil {
		return
	}
	ledgers.ApplyResult(r.Context(), out.Winner, players, rounds)
}
