package session

import (
	"context"
	"testing"
	"time"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	id, err := store.Create(ctx, "user_1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a session id")
	}

	other, _ := store.Create(ctx, "user_2", domain.RoleAdmin)
	if other == id {
		t.Fatalf("session ids must be unique")
	}

	sess, err := store.Lookup(ctx, id)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if sess.UserID != "user_1" || sess.Role != domain.RoleCustomer {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := store.Destroy(ctx, id); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if _, err := store.Lookup(ctx, id); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after destroy, got %v", err)
	}
}

func TestMemoryStore_DestroyIdempotent(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	if err := store.Destroy(ctx, "never-existed"); err != nil {
		t.Fatalf("destroying an absent session returned error: %v", err)
	}
	if err := store.Destroy(ctx, "never-existed"); err != nil {
		t.Fatalf("second destroy returned error: %v", err)
	}
}

func TestMemoryStore_ExpiryBehavesLikeAbsent(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	id, _ := store.Create(ctx, "user_1", domain.RoleCustomer)
	if _, err := store.Lookup(ctx, id); err != nil {
		t.Fatalf("fresh session should resolve: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Lookup(ctx, id); err != domain.ErrSessionNotFound {
		t.Fatalf("expired session must behave like an absent one, got %v", err)
	}

	store.sweep()
	if len(store.entries) != 0 {
		t.Fatalf("sweep did not reclaim expired entries")
	}
}
