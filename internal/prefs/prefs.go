// internal/prefs/prefs.go
//
// Player profile and game settings.
//
// Stored as JSON under two keys:
//   - userProfile  → {"name": "..."}
//   - gameSettings → {"soundEnabled", "notifications", "animations", "autoHints"}
//
// A stored value that fails to decode is logged as ErrMalformedStoredState
// and treated as missing. It never fails the caller.

package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	KeyProfile  = "userProfile"
	KeySettings = "gameSettings"
)

var (
	ErrMalformedStoredState = errors.New("malformed stored state")
	ErrEmptyName            = errors.New("name must not be empty")
)

// Profile is the player's display identity.
type Profile struct {
	Name string `json:"name"`
}

// Settings are the player's gameplay toggles.
type Settings struct {
	SoundEnabled  bool `json:"soundEnabled"`
	Notifications bool `json:"notifications"`
	Animations    bool `json:"animations"`
	AutoHints     bool `json:"autoHints"`
}

// DefaultSettings is what a new player starts with.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, Notifications: true, Animations: true, AutoHints: false}
}

// Store reads and writes preferences through a KV backend.
type Store struct{ kv KV }

func New(kv KV) *Store { return &Store{kv: kv} }

// LoadProfile returns the stored profile. edit is true when no usable name
// is stored, so the caller should open the profile editor.
func (s *Store) LoadProfile(ctx context.Context, playerID string) (p Profile, edit bool, err error) {
	found, err := s.load(ctx, playerID, KeyProfile, &p)
	if err != nil {
		return Profile{}, true, err
	}
	if !found {
		p = Profile{}
	}
	return p, strings.TrimSpace(p.Name) == "", nil
}

// SaveProfile stores p with its name trimmed.
func (s *Store) SaveProfile(ctx context.Context, playerID string, p Profile) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Profile{}, ErrEmptyName
	}
	return p, s.save(ctx, playerID, KeyProfile, p)
}

// LoadSettings returns the stored settings or DefaultSettings.
func (s *Store) LoadSettings(ctx context.Context, playerID string) (Settings, error) {
	st := DefaultSettings()
	found, err := s.load(ctx, playerID, KeySettings, &st)
	if err != nil {
		return DefaultSettings(), err
	}
	if !found {
		st = DefaultSettings()
	}
	return st, nil
}

func (s *Store) SaveSettings(ctx context.Context, playerID string, st Settings) error {
	return s.save(ctx, playerID, KeySettings, st)
}

// ResetSettings writes and returns DefaultSettings.
func (s *Store) ResetSettings(ctx context.Context, playerID string) (Settings, error) {
	st := DefaultSettings()
	return st, s.save(ctx, playerID, KeySettings, st)
}

// load decodes key into v. found is false when the key is missing or its
// value is malformed.
func (s *Store) load(ctx context.Context, playerID, key string, v any) (found bool, err error) {
	raw, ok, err := s.kv.Get(ctx, playerID, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Warn().Err(errors.Join(ErrMalformedStoredState, err)).
			Str("player", playerID).Str("key", key).Msg("ignoring stored preference")
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, playerID, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, playerID, key, string(b))
}
