package room

import (
	"log/slog"
	"sync"
	"time"
)

// Registry owns all live rooms. Code generation, collision check, and
// insertion happen in one critical section, so two concurrent creates
// can never hand out the same code.
type Registry struct {
	rooms map[string]*Room // code -> room
	mu    sync.RWMutex
}

// NewRegistry creates an empty room registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
	}
}

// Create validates the configuration, generates a unique code, and
// inserts the new room.
func (r *Registry) Create(teamCount int, hostName string) (*Room, error) {
	if teamCount < 1 || hostName == "" {
		return nil, ErrInvalidConfig
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := make(map[string]bool, len(r.rooms))
	for code := range r.rooms {
		existing[code] = true
	}

	code := GenerateCode(existing)
	room := NewRoom(code, teamCount, hostName)
	r.rooms[code] = room

	slog.Info("room created", "code", code, "teams", teamCount, "host", hostName)
	return room, nil
}

// Get returns a room by its code, case-insensitively. Lookup only.
func (r *Registry) Get(code string) *Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[NormalizeCode(code)]
}

// Delete removes a room by its code. No-op if the code is unknown.
func (r *Registry) Delete(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code = NormalizeCode(code)
	if _, ok := r.rooms[code]; !ok {
		return
	}
	delete(r.rooms, code)
	slog.Info("room removed", "code", code)
}

// Count returns the number of live rooms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Reap removes rooms that are empty and older than ttl, returning how
// many were evicted. Rooms with players are never touched.
func (r *Registry) Reap(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	evicted := 0
	for code, room := range r.rooms {
		if room.IsEmpty() && room.CreatedAt.Before(cutoff) {
			delete(r.rooms, code)
			evicted++
			slog.Info("stale room reaped", "code", code, "age", time.Since(room.CreatedAt))
		}
	}
	return evicted
}
