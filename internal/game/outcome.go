package game

// OutcomeKind tags what just happened so callers can branch on it
// without poking at optional fields that don't apply.
type OutcomeKind string

const (
	// OutcomeNone means the input was ignored (dead victim, unknown id,
	// wrong phase). State is unchanged.
	OutcomeNone OutcomeKind = "none"

	// OutcomeRoundStart announces the starting player and turn direction
	// after the last assignment reveal.
	OutcomeRoundStart OutcomeKind = "round_start"

	// OutcomeImpostorEliminated: an impostor was voted out but others
	// remain, the game continues.
	OutcomeImpostorEliminated OutcomeKind = "impostor_eliminated"

	// OutcomeInnocentEliminated: a citizen or undercover was voted out
	// and the game continues.
	OutcomeInnocentEliminated OutcomeKind = "innocent_eliminated"

	// OutcomeLastStand: a caught impostor gets a word guess (hardcore).
	OutcomeLastStand OutcomeKind = "last_stand"

	// OutcomeLastStandMiss: the guess was wrong but impostors remain,
	// play returns to debate.
	OutcomeLastStandMiss OutcomeKind = "last_stand_miss"

	// OutcomeEventTriggered: a round modifier activated for the next
	// debate round.
	OutcomeEventTriggered OutcomeKind = "event_triggered"

	// OutcomeRoundContinued: next round began with no modifier.
	OutcomeRoundContinued OutcomeKind = "round_continued"

	// OutcomeGameOver: the session reached a terminal state.
	OutcomeGameOver OutcomeKind = "game_over"
)

// Outcome is the tagged result of a state-changing operation. Only the
// fields relevant to Kind are populated.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	Victim        *Player `json:"victim,omitempty"`
	ImpostorsLeft int     `json:"impostorsLeft,omitempty"`
	CitizensLeft  int     `json:"citizensLeft,omitempty"`

	Winner Winner `json:"winner,omitempty"`

	Event *Event `json:"event,omitempty"`

	StartingPlayer string    `json:"startingPlayer,omitempty"`
	TurnDirection  Direction `json:"turnDirection,omitempty"`

	TiedIDs []string `json:"tiedIds,omitempty"`
}

func none() Outcome { return Outcome{Kind: OutcomeNone} }
