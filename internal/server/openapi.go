package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Impostor API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Impostor party game: rooms, sessions, ledgers.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/rooms
	postRooms, _ := r.NewOperationContext(http.MethodPost, "/api/rooms")
	postRooms.SetSummary("Create room")
	postRooms.SetDescription("Opens a room with a fresh join code. A passcode makes it private.")
	postRooms.AddReqStructure(CreateRoomRequest{})
	postRooms.AddRespStructure(CreateRoomResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postRooms)

	// GET /api/rooms/{code}
	getRoom, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{code}")
	getRoom.SetSummary("Look up room")
	getRoom.SetDescription("Inspect a room before joining.")
	getRoom.AddRespStructure(RoomLookupResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getRoom.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getRoom)

	// POST /api/rooms/{code}/join
	postJoin, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{code}/join")
	postJoin.SetSummary("Join room")
	postJoin.SetDescription("Join the lobby. Returns an opaque session token.")
	postJoin.AddReqStructure(JoinRequest{})
	postJoin.AddRespStructure(JoinResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postJoin)

	// GET /api/rooms/{code}/qr
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{code}/qr")
	getQR.SetSummary("Join QR code")
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/png"))
	_ = r.AddOperation(getQR)

	// GET /api/rooms/{code}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{code}/state")
	getState.SetSummary("Room state")
	getState.SetDescription("Returns the room as the requesting player may see it. Requires Bearer token.")
	getState.AddRespStructure(RoomSnapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/rooms/{code}/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{code}/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Assigns roles and opens the session. Host only.")
	postStart.AddReqStructure(StartGameRequest{})
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	_ = r.AddOperation(postStart)

	// POST /api/rooms/{code}/voting/cast
	postCast, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{code}/voting/cast")
	postCast.SetSummary("Cast secret ballot")
	postCast.SetDescription("One vote per living player; a re-vote replaces the earlier entry.")
	postCast.AddReqStructure(VoteRequest{})
	postCast.AddRespStructure(OutcomeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postCast)

	// POST /api/rooms/{code}/voting/resolve
	postResolve, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{code}/voting/resolve")
	postResolve.SetSummary("Resolve open vote")
	postResolve.SetDescription("Settles a show-of-hands accusation directly. Host only.")
	postResolve.AddReqStructure(VoteRequest{})
	postResolve.AddRespStructure(OutcomeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postResolve)

	// POST /api/rooms/{code}/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/rooms/{code}/guess")
	postGuess.SetSummary("Last-stand guess")
	postGuess.SetDescription("Hardcore mode: the caught impostor guesses the majority word.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(OutcomeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postGuess)

	// GET /api/rooms/{code}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/rooms/{code}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream signalling room changes.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/scores
	getScores, _ := r.NewOperationContext(http.MethodGet, "/api/scores")
	getScores.SetSummary("Score ledger")
	getScores.AddRespStructure(map[string]int{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getScores)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.Marshal(spec)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
