// internal/session/store.go

// Package session persists bearer sessions across client runs. The user and
// admin scopes are fully independent: two stores, two files, two lifecycles.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// Scope selects which token slot a store manages.
type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

// Store holds the current session for one scope, mirrored to a JSON file so
// it survives restarts. All reads and writes go through one mutex, so no
// caller ever observes a half-updated token.
type Store struct {
	mu      sync.RWMutex
	path    string
	scope   Scope
	current *models.AuthSession
	logger  logger.Logger
}

// NewStore opens the session file for scope under dir, creating the
// directory if needed. A corrupt or missing file yields an anonymous store,
// not an error.
func NewStore(dir string, scope Scope, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	s := &Store{
		path:   filepath.Join(dir, fmt.Sprintf("session-%s.json", scope)),
		scope:  scope,
		logger: log.WithFields(map[string]interface{}{"scope": string(scope)}),
	}
	s.load()
	return s, nil
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess models.AuthSession
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		s.logger.Warn("discarding unreadable session file", map[string]interface{}{"path": s.path})
		_ = os.Remove(s.path)
		return
	}
	s.current = &sess
}

// Token implements httpclient.TokenSource. Returns "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Current returns a copy of the stored session, or nil when anonymous.
func (s *Store) Current() *models.AuthSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copy := *s.current
	return &copy
}

// Authenticated reports whether a token is stored.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Set replaces the stored session. Token claims are inspected to fill in the
// expiry and any roles the login response omitted. The file is replaced
// atomically (write temp, rename).
func (s *Store) Set(sess models.AuthSession) error {
	if claims, err := InspectToken(sess.Token); err == nil {
		if sess.ExpiresAt.IsZero() {
			sess.ExpiresAt = claims.ExpiresAt
		}
		if len(sess.Roles) == 0 {
			sess.Roles = claims.Roles
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(&sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	s.current = &sess
	s.logger.Debug("session saved", map[string]interface{}{"username": sess.Username})
	return nil
}

// Clear removes the stored session and its file. Clearing an anonymous store
// is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
