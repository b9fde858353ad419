package tokenstore

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRevokesUntilExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	revoked, errCheck := store.IsRevoked(ctx, "tok-1")
	if errCheck != nil {
		t.Fatalf("check: %v", errCheck)
	}
	if revoked {
		t.Fatal("expected unknown token to be unrevoked")
	}

	if errRevoke := store.Revoke(ctx, "tok-1", time.Hour); errRevoke != nil {
		t.Fatalf("revoke: %v", errRevoke)
	}
	revoked, errCheck = store.IsRevoked(ctx, "tok-1")
	if errCheck != nil {
		t.Fatalf("check: %v", errCheck)
	}
	if !revoked {
		t.Fatal("expected token revoked")
	}
}

func TestMemoryStoreExpiredEntriesAreSwept(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if errRevoke := store.Revoke(ctx, "tok-short", time.Millisecond); errRevoke != nil {
		t.Fatalf("revoke: %v", errRevoke)
	}
	time.Sleep(5 * time.Millisecond)

	revoked, errCheck := store.IsRevoked(ctx, "tok-short")
	if errCheck != nil {
		t.Fatalf("check: %v", errCheck)
	}
	if revoked {
		t.Fatal("expected expired revocation to lapse")
	}
}
