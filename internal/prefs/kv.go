// internal/prefs/kv.go
//
// Key/value backends for player preferences. Values are opaque strings
// (JSON documents written by prefs.go), scoped by player id.

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// KV is a per-player string key/value store.
type KV interface {
	Get(ctx context.Context, playerID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, playerID, key, value string) error
	Delete(ctx context.Context, playerID, key string) error
}

// SQLiteKV stores values in the prefs table.
type SQLiteKV struct{ db *sql.DB }

func NewSQLiteKV(db *sql.DB) *SQLiteKV { return &SQLiteKV{db: db} }

func (s *SQLiteKV) Get(ctx context.Context, playerID, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM prefs WHERE player_id=? AND key=?`, playerID, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get pref %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, playerID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (player_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT (player_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		playerID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, playerID, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM prefs WHERE player_id=? AND key=?`, playerID, key); err != nil {
		return fmt.Errorf("delete pref %s: %w", key, err)
	}
	return nil
}

// MemoryKV is a map-backed KV.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV { return &MemoryKV{m: make(map[string]string)} }

func memKey(playerID, key string) string { return playerID + "\x00" + key }

func (m *MemoryKV) Get(_ context.Context, playerID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[memKey(playerID, key)]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, playerID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.m[memKey(playerID, key)] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, playerID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.m, memKey(playerID, key))
	return nil
}
