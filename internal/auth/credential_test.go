package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ashureev/console-gate/internal/store"
)

func newTestRepo(t *testing.T) store.Repository {
	t.Helper()

	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestEnsureCredential_ConfigOverrideWins(t *testing.T) {
	repo := newTestRepo(t)

	cred, err := EnsureCredential(context.Background(), repo, "ops", "configured")
	if err != nil {
		t.Fatalf("EnsureCredential failed: %v", err)
	}
	if cred.Principal != "ops" || cred.Secret != "configured" {
		t.Errorf("Expected configured pair, got %+v", cred)
	}

	// Config-supplied pairs are not persisted.
	stored, err := repo.GetCredential(context.Background())
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if stored != nil {
		t.Errorf("Expected nothing persisted for configured pair, got %+v", stored)
	}
}

func TestEnsureCredential_GeneratesOnceAtFirstRun(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := EnsureCredential(ctx, repo, "", "")
	if err != nil {
		t.Fatalf("EnsureCredential failed: %v", err)
	}
	if first.Principal != defaultPrincipal {
		t.Errorf("Expected default principal, got %q", first.Principal)
	}
	if len(first.Secret) != secretBytes*2 {
		t.Errorf("Expected %d-char hex secret, got %q", secretBytes*2, first.Secret)
	}

	// A second start loads the same pair instead of regenerating.
	second, err := EnsureCredential(ctx, repo, "", "")
	if err != nil {
		t.Fatalf("EnsureCredential failed on reload: %v", err)
	}
	if second.Secret != first.Secret || second.Principal != first.Principal {
		t.Errorf("Expected stable credential across restarts, got %+v then %+v", first, second)
	}
}
