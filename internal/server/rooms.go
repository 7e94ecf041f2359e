package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ncastellano/impostor/internal/game"
	"github.com/ncastellano/impostor/internal/storage"
)

var ErrRoomNotFound = errors.New("room not found")

// roomCodeAlphabet avoids 0/O and 1/I lookalikes in join codes.
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Rooms is the registry of live rooms. Each room carries its own
// engine (and therefore its own rand stream) so room mutexes are the
// only synchronization games need.
type Rooms struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	kv     storage.KV
	logger *slog.Logger
	rng    *rand.Rand
	rngMu  sync.Mutex
}

func NewRooms(kv storage.KV, logger *slog.Logger, rng *rand.Rand) *Rooms {
	return &Rooms{
		rooms:  make(map[string]*Room),
		kv:     kv,
		logger: logger,
		rng:    rng,
	}
}

// Restore loads persisted room snapshots so a restarted server picks up
// running games. Snapshots that fail to decode are skipped, not fatal.
func (rs *Rooms) Restore(ctx context.Context) error {
	keys, err := rs.kv.List(ctx, storage.RoomKey(""))
	if err != nil {
		return err
	}
	for _, key := range keys {
		var room Room
		data, err := rs.kv.Get(ctx, key)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, &room); err != nil {
			rs.logger.Warn("skipping corrupt room snapshot", "key", key, "error", err)
			continue
		}
		room.engine = game.NewSeededEngine()
		rs.rooms[room.Code] = &room
	}
	rs.logger.Info("rooms restored", "count", len(rs.rooms))
	return nil
}

// Create opens a room with a fresh join code. A non-empty passcode
// makes the room private, stored only as a bcrypt hash.
func (rs *Rooms) Create(ctx context.Context, passcode string) (*Room, error) {
	var hash []byte
	if passcode != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	code := rs.newCode()
	for rs.rooms[code] != nil {
		code = rs.newCode()
	}

	room := &Room{
		Code:         code,
		PasscodeHash: hash,
		Tokens:       make(map[string]string),
		CreatedAt:    time.Now().UTC(),
		engine:       game.NewSeededEngine(),
	}
	rs.rooms[code] = room
	rs.persist(ctx, room)
	return room, nil
}

func (rs *Rooms) Get(code string) (*Room, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	room, ok := rs.rooms[strings.ToUpper(code)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Delete drops a room and its persisted snapshot.
func (rs *Rooms) Delete(ctx context.Context, code string) {
	rs.mu.Lock()
	delete(rs.rooms, code)
	rs.mu.Unlock()
	if err := rs.kv.Delete(ctx, storage.RoomKey(code)); err != nil {
		rs.logger.Warn("deleting room snapshot", "code", code, "error", err)
	}
}

// persist writes the room snapshot through the KV. The snapshot is
// encoded under the room mutex so a concurrent handler can't mutate the
// roster or session mid-marshal. Persistence failures are logged, not
// surfaced: the in-memory room stays authoritative.
func (rs *Rooms) persist(ctx context.Context, room *Room) {
	var (
		data []byte
		err  error
	)
	room.locked(func() { data, err = json.Marshal(room) })
	if err != nil {
		rs.logger.Warn("encoding room", "code", room.Code, "error", err)
		return
	}
	if err := rs.kv.Put(ctx, storage.RoomKey(room.Code), data); err != nil {
		rs.logger.Warn("persisting room", "code", room.Code, "error", err)
	}
}

func (rs *Rooms) newCode() string {
	rs.rngMu.Lock()
	defer rs.rngMu.Unlock()
	b := make([]byte, 4)
	for i := range b {
		b[i] = roomCodeAlphabet[rs.rng.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}
