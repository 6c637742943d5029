package settings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestManagerStore(t *testing.T) *ManagerStore {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewManagerStore(client)
}

func TestManagerStore_RoundTrip(t *testing.T) {
	store := newTestManagerStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "block_unknown_callers", true); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "block_unknown_callers")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got {
		t.Fatalf("expected true after write")
	}

	if err := store.Set(ctx, "block_unknown_callers", false); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err = store.Get(ctx, "block_unknown_callers")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got {
		t.Fatalf("expected false after overwrite")
	}
}

func TestManagerStore_AbsentKeyReadsFalse(t *testing.T) {
	store := newTestManagerStore(t)

	got, err := store.Get(context.Background(), "never_written")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got {
		t.Fatalf("expected false for absent key")
	}
}

func TestManagerStore_EmptyKeyRejected(t *testing.T) {
	store := newTestManagerStore(t)

	if _, err := store.Get(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty key on get")
	}
	if err := store.Set(context.Background(), "", true); err == nil {
		t.Fatalf("expected error for empty key on set")
	}
}
