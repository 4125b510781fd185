// internal/store/memory.go
//
// In-memory session store for the HTTP API.
//
// Characteristics:
//   - Stores *game.Session values keyed by Session.ID.
//   - Update runs its callback under the write lock, so each request's
//     reads and writes of a session are atomic.
//   - Sessions idle longer than the configured TTL are evicted by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordwonder/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("game not found")

// Store is the session persistence interface used by the HTTP server.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a session snapshot by ID.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error
}

type entry struct {
	session *game.Session
	touched time.Time
}

// Memory is a map-backed Store.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{sessions: make(map[string]*entry), now: time.Now}
}

func (m *Memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{session: s, touched: m.now()}
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := m.Update(ctx, id, func(s *game.Session) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e.session)
}

// Sweep removes sessions not touched within ttl and returns how many went.
func (m *Memory) Sweep(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-ttl)
	n := 0
	for id, e := range m.sessions {
		if e.touched.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
