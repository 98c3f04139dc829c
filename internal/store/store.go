// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/ashureev/console-gate/internal/domain"
)

// Repository defines the interface for persisting console state.
// Sessions and history are memory-only; the only persisted record is
// the operator credential pair, written once at first run.
type Repository interface {
	// GetCredential retrieves the stored credential pair, or nil if
	// none has been created yet.
	GetCredential(ctx context.Context) (*domain.Credential, error)

	// PutCredential stores the credential pair. It fails if a pair
	// already exists; the pair is fixed for the lifetime of the
	// installation.
	PutCredential(ctx context.Context, cred *domain.Credential) error

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
