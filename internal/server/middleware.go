package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const (
	ctxKeyRoom ctxKey = iota
	ctxKeyMember
)

// roomMiddleware resolves {code} to a live room.
func roomMiddleware(rooms *Rooms) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			room, err := rooms.Get(chi.URLParam(r, "code"))
			if err != nil {
				writeError(w, http.StatusNotFound, "room not found")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyRoom, room)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// memberMiddleware authenticates the player via the opaque Bearer token
// minted on join. SSE clients can't set headers, so a token query
// parameter is accepted as well.
func memberMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				token = r.URL.Query().Get("token")
			}
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing session token")
				return
			}

			room := roomFrom(r)
			var member *Member
			room.locked(func() { member = room.memberByToken(token) })
			if member == nil {
				writeError(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyMember, member)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roomFrom(r *http.Request) *Room {
	return r.Context().Value(ctxKeyRoom).(*Room)
}

func memberFrom(r *http.Request) *Member {
	return r.Context().Value(ctxKeyMember).(*Member)
}
