// Package domain holds the core value types shared across the console.
package domain

import (
	"time"
)

// Session is a live authenticated principal identified by a bearer token.
type Session struct {
	Token          string
	Principal      string
	CreatedAt      time.Time
	LastActivityAt time.Time
}

// IdleFor reports how long the session has been idle as of now.
func (s *Session) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.LastActivityAt)
}

// Expired reports whether the session has been idle longer than timeout.
func (s *Session) Expired(now time.Time, timeout time.Duration) bool {
	return s.IdleFor(now) > timeout
}
