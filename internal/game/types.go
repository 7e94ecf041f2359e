// Package game implements the Impostor session core: role assignment,
// phase transitions, vote resolution, win detection and scoring. It is
// pure state-machine logic with no transport or storage concerns; the
// server and any local UI drive it through its exported operations.
package game

import "errors"

type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleImpostor   Role = "impostor"
	RoleUndercover Role = "undercover"
)

type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeChaos    Mode = "chaos"
	ModeHardcore Mode = "hardcore"
)

// Phase is the session state-machine state. VOTING_PASS/VOTING_REVEAL
// carry the per-voter secret ballot; VOTING is the open show-of-hands
// variant that resolves a single accusation directly.
type Phase string

const (
	PhaseSetup            Phase = "SETUP"
	PhaseAssignmentWait   Phase = "ASSIGNMENT_WAIT"
	PhaseAssignmentReveal Phase = "ASSIGNMENT_REVEAL"
	PhaseDebate           Phase = "DEBATE"
	PhaseVoting           Phase = "VOTING"
	PhaseVotingPass       Phase = "VOTING_PASS"
	PhaseVotingReveal     Phase = "VOTING_REVEAL"
	PhaseLastBullet       Phase = "LAST_BULLET"
	PhaseGameOver         Phase = "GAME_OVER"
)

type Winner string

const (
	WinnerCitizens Winner = "citizens"
	WinnerImpostor Winner = "impostor"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Player is one seat in a session. Citizens carry the majority word,
// undercover players the minority word, impostors no word at all.
// IsDead only ever flips false to true within a session.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Word   string `json:"word,omitempty"`
	IsDead bool   `json:"isDead"`
	Avatar string `json:"avatar,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Config is the setup-time knobs for a session. MaxRounds of zero means
// no round limit.
type Config struct {
	ThemeIDs        []string `json:"themeIds"`
	ImpostorCount   int      `json:"impostorCount"`
	UndercoverCount int      `json:"undercoverCount"`
	Mode            Mode     `json:"mode"`
	MaxRounds       int      `json:"maxRounds,omitempty"`
	SecretVoting    bool     `json:"secretVoting"`
}

var (
	ErrInvalidConfig = errors.New("invalid role configuration")
	ErrWrongPhase    = errors.New("operation not valid in current phase")
)

// Validate rejects role counts that could not leave a single citizen
// standing. Runs before any assignment; the resolvers never see an
// invalid configuration.
func (c Config) Validate(playerCount int) error {
	if c.ImpostorCount < 1 {
		return ErrInvalidConfig
	}
	if c.UndercoverCount < 0 {
		return ErrInvalidConfig
	}
	if c.ImpostorCount+c.UndercoverCount >= playerCount {
		return ErrInvalidConfig
	}
	return nil
}

// Words is the pair drawn for a session plus the theme it came from.
type Words struct {
	Secret     string `json:"secret"`
	Undercover string `json:"undercover"`
	Theme      string `json:"theme"`
}

// Session is the canonical mutable game state. It is owned by exactly
// one writer; everything else renders snapshots of it.
type Session struct {
	Phase              Phase             `json:"phase"`
	Players            []*Player         `json:"players"`
	Config             Config            `json:"config"`
	Theme              string            `json:"theme"`
	SecretWord         string            `json:"secretWord"`
	UndercoverWord     string            `json:"undercoverWord"`
	CurrentPlayerIndex int               `json:"currentPlayerIndex"`
	VotingPlayerIndex  int               `json:"votingPlayerIndex"`
	Votes              map[string]string `json:"votes"`
	Winner             Winner            `json:"winner,omitempty"`
	RoundStartShown    bool              `json:"roundStartShown"`
	StartingPlayer     string            `json:"startingPlayer,omitempty"`
	TurnDirection      Direction         `json:"turnDirection,omitempty"`
	CurrentRound       int               `json:"currentRound"`
	ActiveEvent        *Event            `json:"activeEvent,omitempty"`
	TimerOverride      int               `json:"timerOverride,omitempty"`
	TimerBase          int               `json:"timerBase"`
}

// PlayerByID returns the live session entry for id, or nil.
func (s *Session) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Alive returns the players still in the game, in seating order.
func (s *Session) Alive() []*Player {
	alive := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.IsDead {
			alive = append(alive, p)
		}
	}
	return alive
}

func (s *Session) livingImpostors() int {
	n := 0
	for _, p := range s.Players {
		if !p.IsDead && p.Role == RoleImpostor {
			n++
		}
	}
	return n
}

func (s *Session) Names() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return names
}
