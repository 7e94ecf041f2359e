package game

type EventEffect string

const (
	EffectHalfTimer    EventEffect = "half_timer"
	EffectSilent       EventEffect = "silent"
	EffectOneWord      EventEffect = "one_word"
	EffectConfessional EventEffect = "confessional"
	EffectNoTimer      EventEffect = "no_timer"
)

// Event is a round modifier applied to the next debate round.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Emoji       string      `json:"emoji"`
	Effect      EventEffect `json:"effect"`
}

// NoTimerSentinel is the override set by the untimed-round event.
const NoTimerSentinel = 9999

// eventChance is the per-round-transition probability of rolling a
// modifier.
const eventChance = 0.4

var eventCatalog = []Event{
	{ID: "lightning", Name: "Ronda Relámpago", Description: "El timer se reduce a la mitad. ¡Apúrense!", Emoji: "⚡", Effect: EffectHalfTimer},
	{ID: "silent", Name: "Ronda Muda", Description: "Solo se pueden comunicar con gestos. Prohibido hablar.", Emoji: "🤫", Effect: EffectSilent},
	{ID: "one_word", Name: "Una Palabra", Description: "Solo pueden decir UNA palabra por turno.", Emoji: "☝️", Effect: EffectOneWord},
	{ID: "confessional", Name: "Confesionario", Description: "El primer jugador dice 3 palabras sobre su palabra antes de empezar.", Emoji: "🎤", Effect: EffectConfessional},
	{ID: "no_timer", Name: "Sin Tiempo", Description: "¡Sin límite de tiempo! Discutan hasta que quieran.", Emoji: "♾️", Effect: EffectNoTimer},
}

// rollEvent maybe activates a modifier for the coming round. Returns the
// event (nil for a plain round) and the timer override in seconds (zero
// when the timer is untouched).
func (e *Engine) rollEvent(timerBase int) (*Event, int) {
	if e.rng.Float64() >= eventChance {
		return nil, 0
	}
	ev := eventCatalog[e.rng.Intn(len(eventCatalog))]
	switch ev.Effect {
	case EffectHalfTimer:
		return &ev, timerBase / 2
	case EffectNoTimer:
		return &ev, NoTimerSentinel
	default:
		return &ev, 0
	}
}
