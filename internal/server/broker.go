package server

import (
	"encoding/json"
	"sync"
)

// RoomEvent is the payload published to room subscribers. State changes
// carry no body; clients re-fetch their redacted view, which keeps the
// stream itself free of secrets.
type RoomEvent struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName,omitempty"`
	Phase      string `json:"phase,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by room code.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the
// given room.
func (b *Broker) Subscribe(code string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[code] == nil {
		b.subs[code] = make(map[chan []byte]struct{})
	}
	b.subs[code][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the room's subscribers.
func (b *Broker) Unsubscribe(code string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[code], ch)
	if len(b.subs[code]) == 0 {
		delete(b.subs, code)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given room.
func (b *Broker) Publish(code string, event RoomEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[code] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
