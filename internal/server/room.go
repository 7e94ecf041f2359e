package server

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ncastellano/impostor/internal/game"
)

// Member is a seat in the lobby roster, created on join and carried
// into the session once the host starts the game.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Color    string    `json:"color"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Room is one online game: a lobby roster plus, once started, the
// authoritative game session. All state-changing intents are serialized
// through its mutex; clients only read snapshots and emit intents.
type Room struct {
	mu sync.Mutex

	Code         string            `json:"code"`
	HostID       string            `json:"hostId"`
	PasscodeHash []byte            `json:"passcodeHash,omitempty"`
	Members      []*Member         `json:"members"`
	Session      *game.Session     `json:"session,omitempty"`
	Tokens       map[string]string `json:"tokens"` // session token -> member id
	CreatedAt    time.Time         `json:"createdAt"`

	engine *game.Engine
}

var avatarPalette = []string{"🐸", "🦊", "🐼", "🐙", "🦁", "🐧", "🐯", "🦄", "🐺", "🐹", "🦉", "🐢"}

var colorPalette = []string{
	"#ef4444", "#3b82f6", "#eab308", "#22c55e",
	"#a855f7", "#f97316", "#14b8a6", "#ec4899",
	"#64748b", "#84cc16", "#06b6d4", "#f43f5e",
}

func (r *Room) locked(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

// checkPasscode verifies the join passcode against the stored bcrypt
// hash. Open rooms (no hash) accept anything.
func (r *Room) checkPasscode(passcode string) bool {
	if len(r.PasscodeHash) == 0 {
		return true
	}
	return bcrypt.CompareHashAndPassword(r.PasscodeHash, []byte(passcode)) == nil
}

func (r *Room) memberByID(id string) *Member {
	for _, m := range r.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (r *Room) memberByToken(token string) *Member {
	id, ok := r.Tokens[token]
	if !ok {
		return nil
	}
	return r.memberByID(id)
}

// snapshot returns the room as seen by viewerID: other players' roles
// and words are blanked while the game runs, ballot contents stay
// hidden until the reveal stage, and everything is public once the
// session is over.
func (r *Room) snapshot(viewerID string) RoomSnapshot {
	snap := RoomSnapshot{
		Code:      r.Code,
		HostID:    r.HostID,
		Members:   r.Members,
		Protected: len(r.PasscodeHash) > 0,
	}
	if r.Session == nil {
		return snap
	}

	s := *r.Session
	over := s.Phase == game.PhaseGameOver

	players := make([]*game.Player, len(s.Players))
	for i, p := range s.Players {
		cp := *p
		if !over && !cp.IsDead && cp.ID != viewerID {
			cp.Role = ""
			cp.Word = ""
		}
		players[i] = &cp
	}
	s.Players = players

	if s.Phase == game.PhaseVotingPass {
		// Only expose who has voted, not for whom.
		voted := make(map[string]string, len(s.Votes))
		for voterID := range s.Votes {
			voted[voterID] = ""
		}
		s.Votes = voted
	}
	if !over {
		s.SecretWord = ""
		s.UndercoverWord = ""
	}

	snap.Session = &s
	return snap
}

// RoomSnapshot is the per-viewer broadcast state.
type RoomSnapshot struct {
	Code      string        `json:"code"`
	HostID    string        `json:"hostId"`
	Members   []*Member     `json:"members"`
	Protected bool          `json:"protected"`
	Session   *game.Session `json:"session,omitempty"`
}
