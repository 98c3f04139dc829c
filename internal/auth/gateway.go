// Package auth provides credential login and bearer-token authorization.
package auth

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
	"github.com/ashureev/console-gate/internal/session"
)

var (
	// ErrInvalidCredentials is returned on a failed login. It never
	// reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned for a missing, unknown, or expired
	// token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Gateway validates bearer tokens and issues sessions against the
// fixed credential pair.
type Gateway struct {
	cred     domain.Credential
	sessions *session.Store
}

// NewGateway creates a gateway for the given credential pair.
func NewGateway(cred domain.Credential, sessions *session.Store) *Gateway {
	return &Gateway{cred: cred, sessions: sessions}
}

// Login checks the credential pair and issues a new session on match.
// Both fields are compared in constant time and the results combined,
// so a mismatch in one field does not short-circuit the other. Each
// login also sweeps expired sessions.
func (g *Gateway) Login(principal, secret string) (domain.Session, error) {
	principalOK := subtle.ConstantTimeCompare([]byte(principal), []byte(g.cred.Principal))
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(g.cred.Secret))
	if principalOK&secretOK != 1 {
		slog.Warn("Login failed")
		return domain.Session{}, ErrInvalidCredentials
	}

	sess, err := g.sessions.Create(principal)
	if err != nil {
		return domain.Session{}, err
	}

	g.sessions.SweepExpired(time.Now())
	return sess, nil
}

// Authorize resolves a bearer token to its session. A successful check
// touches the session's last-activity time (sliding expiry).
func (g *Gateway) Authorize(token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrUnauthorized
	}
	sess, ok := g.sessions.Validate(token)
	if !ok {
		return domain.Session{}, ErrUnauthorized
	}
	return sess, nil
}

// Logout revokes the session for token. An absent token is treated as
// already logged out, so Logout always succeeds.
func (g *Gateway) Logout(token string) {
	g.sessions.Revoke(token)
}
