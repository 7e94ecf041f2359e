package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger verifies that an infrastructure dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

func handleHealth(logger *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				logger.Error("health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "error"})
				return
			}
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
