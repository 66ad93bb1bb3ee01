// Package session manages the client-side authentication session.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Profile is the cached user profile returned alongside the token.
// The backend may omit it entirely.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Store holds the current session and persists it to a state file.
//
// The store is the single owner of the token: the request gateway only
// reads it and may trigger invalidation, it never writes a new value.
// Reads are shared, writes exclusive, so concurrent in-flight requests
// can consult the token while one of them invalidates it.
type Store struct {
	mu      sync.RWMutex
	path    string
	token   string
	profile *Profile

	restored bool

	subMu sync.Mutex
	subs  []Listener
}

// state is the on-disk representation of the session.
type state struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"profile,omitempty"`
}

// Open restores the session from the state file at path. A missing
// file yields an unauthenticated store; an unreadable or corrupt file
// is an error so a broken state file is surfaced instead of silently
// logging the user out.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.restored = true
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", path, err)
	}

	s.token = st.Token
	s.profile = st.Profile
	s.restored = true
	return s, nil
}

// NewMemory creates a store with no backing file, for tests and for
// one-shot invocations that pass credentials explicitly.
func NewMemory() *Store {
	return &Store{restored: true}
}

// Token returns the current bearer token, if a session is established.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Profile returns the cached user profile, or nil.
func (s *Store) Profile() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// IsAuthenticated reports whether a session is established.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Restored reports whether the state file has been read. Callers must
// treat an unrestored store as "unknown", not "logged out".
func (s *Store) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restored
}

// Subscribe registers a listener for invalidation signals.
func (s *Store) Subscribe(fn Listener) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login establishes a new session and persists it.
func (s *Store) Login(profile *Profile, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = profile
	return s.persistLocked()
}

// Logout clears the session explicitly. Subscribers are notified with
// ReasonUserLogout if there was a session to clear.
func (s *Store) Logout() error {
	if !s.clear() {
		return nil
	}
	s.notify(Signal{Reason: ReasonUserLogout})
	return nil
}

// Invalidate clears the session in response to an authorization
// failure and notifies subscribers with the given reason. It reports
// whether this call performed the invalidation: when several in-flight
// requests all hit a 401 against the same session, only the first
// emits a signal.
func (s *Store) Invalidate(reason string) bool {
	if !s.clear() {
		return false
	}
	s.notify(Signal{Reason: reason})
	return true
}

// clear drops the session and removes the state file. It reports
// whether there was a session to drop.
func (s *Store) clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" && s.profile == nil {
		return false
	}
	s.token = ""
	s.profile = nil
	if s.path != "" {
		// Best effort: the in-memory session is gone either way.
		_ = os.Remove(s.path)
	}
	return true
}

// notify runs outside the store lock so listeners may call back in.
func (s *Store) notify(sig Signal) {
	s.subMu.Lock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(sig)
	}
}

// persistLocked writes the state file with owner-only permissions.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(state{Token: s.token, Profile: s.profile})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
