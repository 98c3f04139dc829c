// Package session provides the in-memory bearer-token session registry.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
)

// DefaultIdleTimeout is the sliding idle expiry applied when no timeout
// is configured.
const DefaultIdleTimeout = 24 * time.Hour

// tokenBytes gives 128 bits of entropy per token.
const tokenBytes = 16

// Store is an in-memory token registry with sliding idle expiry.
// Sessions are not persisted; a process restart logs everyone out.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*domain.Session
	idleTimeout time.Duration
}

// NewStore creates a session store with the given idle timeout.
func NewStore(idleTimeout time.Duration) *Store {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Store{
		sessions:    make(map[string]*domain.Session),
		idleTimeout: idleTimeout,
	}
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Create registers a new session for principal and returns it.
// An entropy failure is the only error path and callers treat it as
// fatal, not as a bad request.
func (s *Store) Create(principal string) (domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now()
	sess := &domain.Session{
		Token:          token,
		Principal:      principal,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	slog.Info("Session created", "principal", principal)
	return *sess, nil
}

// Validate looks up a session by token. A miss is the normal
// unauthenticated result, not an error. A hit slides the idle expiry
// forward by touching LastActivityAt.
func (s *Store) Validate(token string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return domain.Session{}, false
	}

	sess.LastActivityAt = time.Now()
	return *sess, true
}

// Revoke removes the session for token if present. Idempotent.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SweepExpired removes every session idle longer than the store's
// timeout as of now, and returns how many were removed. It is invoked
// opportunistically on login rather than on a background timer, so
// stale sessions can linger between logins.
func (s *Store) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.Expired(now, s.idleTimeout) {
			delete(s.sessions, token)
			removed++
		}
	}

	if removed > 0 {
		slog.Info("Swept expired sessions", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
