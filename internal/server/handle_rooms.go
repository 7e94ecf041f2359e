package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type CreateRoomRequest struct {
	Passcode string `json:"passcode,omitempty"`
}

type CreateRoomResponse struct {
	Code string `json:"code"`
}

func handleCreateRoom(rooms *Rooms) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRoomRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		room, err := rooms.Create(r.Context(), req.Passcode)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, CreateRoomResponse{Code: room.Code})
	}
}

type RoomLookupResponse struct {
	Code      string `json:"code"`
	HostName  string `json:"hostName,omitempty"`
	Players   int    `json:"players"`
	Protected bool   `json:"protected"`
	Started   bool   `json:"started"`
}

// handleRoomLookup lets a client inspect a room before joining.
func handleRoomLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		var resp RoomLookupResponse
		room.locked(func() {
			resp = RoomLookupResponse{
				Code:      room.Code,
				Players:   len(room.Members),
				Protected: len(room.PasscodeHash) > 0,
				Started:   room.Session != nil,
			}
			if host := room.memberByID(room.HostID); host != nil {
				resp.HostName = host.Name
			}
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

type JoinRequest struct {
	PlayerName string `json:"playerName"`
	Passcode   string `json:"passcode,omitempty"`
}

type JoinResponse struct {
	Token    string `json:"token"`
	PlayerID string `json:"playerId"`
	Code     string `json:"code"`
	IsHost   bool   `json:"isHost"`
}

func handleJoin(rooms *Rooms, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.PlayerName == "" {
			writeError(w, http.StatusBadRequest, "playerName is required")
			return
		}

		room := roomFrom(r)
		var (
			resp    JoinResponse
			errCode int
			errMsg  string
		)
		room.locked(func() {
			if !room.checkPasscode(req.Passcode) {
				errCode, errMsg = http.StatusForbidden, "wrong passcode"
				return
			}
			if room.Session != nil {
				errCode, errMsg = http.StatusConflict, "game already started"
				return
			}

			member := &Member{
				ID:     uuid.NewString(),
				Name:   req.PlayerName,
				Avatar: avatarPalette[len(room.Members)%len(avatarPalette)],
				Color:  colorPalette[len(room.Members)%len(colorPalette)],
			}
			if len(room.Members) == 0 {
				member.IsHost = true
				room.HostID = member.ID
			}
			room.Members = append(room.Members, member)

			token := uuid.NewString()
			room.Tokens[token] = member.ID

			resp = JoinResponse{
				Token:    token,
				PlayerID: member.ID,
				Code:     room.Code,
				IsHost:   member.IsHost,
			}
		})
		if errMsg != "" {
			writeError(w, errCode, errMsg)
			return
		}

		rooms.persist(r.Context(), room)
		broker.Publish(room.Code, RoomEvent{Type: "player_joined", PlayerName: req.PlayerName})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleLeave(rooms *Rooms, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		member := memberFrom(r)

		var empty bool
		room.locked(func() {
			for i, m := range room.Members {
				if m.ID == member.ID {
					room.Members = append(room.Members[:i], room.Members[i+1:]...)
					break
				}
			}
			for token, id := range room.Tokens {
				if id == member.ID {
					delete(room.Tokens, token)
				}
			}
			// Hand the room to the next seat if the host walked out.
			if room.HostID == member.ID && len(room.Members) > 0 {
				room.HostID = room.Members[0].ID
				room.Members[0].IsHost = true
			}
			empty = len(room.Members) == 0
		})

		if empty {
			rooms.Delete(r.Context(), room.Code)
		} else {
			rooms.persist(r.Context(), room)
			broker.Publish(room.Code, RoomEvent{Type: "player_left", PlayerName: member.Name})
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// handleRoomQR renders the join link as a QR code PNG so the host can
// get everyone in without dictating the code.
func handleRoomQR(publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := roomFrom(r)
		png, err := qrcode.Encode(publicURL+"/join/"+room.Code, qrcode.Medium, 256)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
