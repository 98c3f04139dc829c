package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()

	repo, err := NewSQLite(filepath.Join(t.TempDir(), "console.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func TestSQLiteStore_GetCredentialEmpty(t *testing.T) {
	repo := newTestStore(t)

	cred, err := repo.GetCredential(context.Background())
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if cred != nil {
		t.Errorf("Expected nil credential on fresh store, got %+v", cred)
	}
}

func TestSQLiteStore_PutAndGetCredential(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	want := &domain.Credential{
		Principal: "admin",
		Secret:    "0123456789abcdef",
		CreatedAt: time.Now().Truncate(time.Second),
	}
	if err := repo.PutCredential(ctx, want); err != nil {
		t.Fatalf("PutCredential failed: %v", err)
	}

	got, err := repo.GetCredential(ctx)
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected stored credential back, got nil")
	}
	if got.Principal != want.Principal || got.Secret != want.Secret {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("Expected CreatedAt %v, got %v", want.CreatedAt, got.CreatedAt)
	}
}

func TestSQLiteStore_PutCredentialOnce(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	first := &domain.Credential{Principal: "admin", Secret: "one", CreatedAt: time.Now()}
	if err := repo.PutCredential(ctx, first); err != nil {
		t.Fatalf("PutCredential failed: %v", err)
	}

	// The pair is fixed for the installation; a second insert must fail.
	second := &domain.Credential{Principal: "admin", Secret: "two", CreatedAt: time.Now()}
	if err := repo.PutCredential(ctx, second); err == nil {
		t.Error("Expected second PutCredential to fail")
	}

	got, err := repo.GetCredential(ctx)
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if got.Secret != "one" {
		t.Errorf("Expected original secret preserved, got %q", got.Secret)
	}
}

func TestSQLiteStore_Ping(t *testing.T) {
	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
