// Package storage persists the game's ledgers and session snapshots as
// JSON documents behind a small key-value interface, so the core logic
// never touches a concrete database and tests can swap in memory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("not found")

// KV is the injected persistence surface: opaque JSON blobs under
// string keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	// List returns the keys under prefix, for snapshot recovery.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Well-known keys for the persisted entities.
const (
	KeyScores      = "scores"
	KeyHistory     = "impostor_history"
	KeyUsedWords   = "used_words"
	KeyPreferences = "preferences"
	KeySession     = "session"
)

// RoomKey namespaces a persisted room snapshot by its join code.
func RoomKey(code string) string { return "room:" + code }

// Load reads the entity under key into def. Absence and parse failure
// both leave def at its zero/default value: corrupt state for one
// entity never takes down the others, the game just starts fresh.
func Load[T any](ctx context.Context, kv KV, logger *slog.Logger, key string, def T) T {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		logger.Warn("reading persisted entity, using default", "key", key, "error", err)
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("corrupt persisted entity, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Save writes v under key as JSON.
func Save(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Memory is an in-process KV for tests and throwaway runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *Memory) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
