// Package session persists the authenticated identity and access token
// across process restarts, mirroring the portal's durable client storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fieldforce/internal/domain/workforce"
)

const (
	keyAccessToken = "accessToken"
	keyUser        = "user"
)

// Session pairs the credential token with the identity it belongs to. A
// session is valid only when both halves are present.
type Session struct {
	Token    string
	Identity workforce.Identity
}

// Store is a file-backed key-value store holding the access token under
// "accessToken" and the serialized identity under "user". Writes go through
// a temp file and rename so readers observe either the old pair or the new
// pair, never a mix.
type Store struct {
	mu       sync.Mutex
	path     string
	watchers []chan struct{}
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session store: %w: empty path", workforce.ErrConfiguration)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return &Store{path: path}, nil
}

// Save persists the token and identity together. Either both land on disk
// or the previous state is untouched.
func (s *Store) Save(token string, identity workforce.Identity) error {
	userJSON, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session store: encode identity: %w", err)
	}

	record := map[string]string{
		keyAccessToken: token,
		keyUser:        string(userJSON),
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("session store: encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeLocked(payload); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

// Load returns the persisted session, or ok=false when either field is
// missing or fails to parse. Partial state counts as absent.
func (s *Store) Load() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Clear removes both fields. Calling it on an already-empty store is a
// no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session store: clear: %w", err)
	}
	s.notifyLocked()
	return nil
}

// Watch returns a channel that receives a signal after every Save or Clear,
// so other parts of the process can react to session changes without
// polling. The channel has a buffer of one; coalesced signals are fine.
func (s *Store) Watch() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.watchers = append(s.watchers, ch)
	return ch
}

func (s *Store) loadLocked() (Session, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}

	var record map[string]string
	if err := json.Unmarshal(raw, &record); err != nil {
		return Session{}, false
	}

	token, hasToken := record[keyAccessToken]
	userJSON, hasUser := record[keyUser]
	if !hasToken || !hasUser || token == "" || userJSON == "" {
		return Session{}, false
	}

	var identity workforce.Identity
	if err := json.Unmarshal([]byte(userJSON), &identity); err != nil {
		return Session{}, false
	}
	if identity.ID == "" {
		return Session{}, false
	}

	return Session{Token: token, Identity: identity}, true
}

func (s *Store) writeLocked(payload []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("session store: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session store: commit: %w", err)
	}
	return nil
}

func (s *Store) notifyLocked() {
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
