package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
	"github.com/ashureev/console-gate/internal/store"
)

const (
	defaultPrincipal = "admin"
	secretBytes      = 18
)

func generateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// EnsureCredential resolves the operator credential pair. An explicit
// principal/secret from configuration wins; otherwise the persisted
// pair is loaded, and on a fresh install a pair is generated, stored,
// and printed once so the operator can log in.
func EnsureCredential(ctx context.Context, repo store.Repository, principal, secret string) (domain.Credential, error) {
	if principal != "" && secret != "" {
		return domain.Credential{
			Principal: principal,
			Secret:    secret,
			CreatedAt: time.Now(),
		}, nil
	}

	cred, err := repo.GetCredential(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("load credential: %w", err)
	}
	if cred != nil {
		return *cred, nil
	}

	generated, err := generateSecret()
	if err != nil {
		return domain.Credential{}, err
	}

	fresh := domain.Credential{
		Principal: defaultPrincipal,
		Secret:    generated,
		CreatedAt: time.Now(),
	}
	if err := repo.PutCredential(ctx, &fresh); err != nil {
		return domain.Credential{}, fmt.Errorf("store credential: %w", err)
	}

	// First run only: the operator has no other way to learn the secret.
	slog.Info("Generated console credentials", "principal", fresh.Principal, "secret", fresh.Secret)

	return fresh, nil
}
