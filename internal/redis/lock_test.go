package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLockStore(t *testing.T) (*LockStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLockStore(client), mr
}

func TestRequestLockKey(t *testing.T) {
	if got := requestLockKey(42); got != "lock:ride_request:42" {
		t.Errorf("expected lock:ride_request:42, got %s", got)
	}
}

func TestAcquireRequestLock_Exclusive(t *testing.T) {
	store, mr := newTestLockStore(t)
	ctx := context.Background()

	token, ok, err := store.AcquireRequestLock(ctx, 7, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || token == "" {
		t.Fatalf("expected first acquire to succeed, got ok=%v token=%q", ok, token)
	}

	if got, _ := mr.Get(requestLockKey(7)); got != token {
		t.Errorf("expected key to hold token %s, got %s", token, got)
	}
	if ttl := mr.TTL(requestLockKey(7)); ttl != time.Minute {
		t.Errorf("expected ttl of 1m, got %v", ttl)
	}

	_, ok, err = store.AcquireRequestLock(ctx, 7, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected second acquire to fail while the lock is held")
	}

	if _, ok, _ := store.AcquireRequestLock(ctx, 8, time.Minute); !ok {
		t.Errorf("expected a different request to lock independently")
	}
}

func TestReleaseRequestLock_StaleTokenKeepsLock(t *testing.T) {
	store, mr := newTestLockStore(t)
	ctx := context.Background()

	token, _, _ := store.AcquireRequestLock(ctx, 7, time.Minute)

	if err := store.ReleaseRequestLock(ctx, 7, "stale-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := mr.Get(requestLockKey(7)); got != token {
		t.Errorf("expected lock to survive a stale release, got %q", got)
	}

	if _, ok, _ := store.AcquireRequestLock(ctx, 7, time.Minute); ok {
		t.Errorf("expected request to stay locked")
	}
}

func TestReleaseRequestLock_OwnerDeletes(t *testing.T) {
	store, mr := newTestLockStore(t)
	ctx := context.Background()

	token, _, _ := store.AcquireRequestLock(ctx, 7, time.Minute)

	if err := store.ReleaseRequestLock(ctx, 7, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists(requestLockKey(7)) {
		t.Errorf("expected lock key to be deleted")
	}

	if _, ok, _ := store.AcquireRequestLock(ctx, 7, time.Minute); !ok {
		t.Errorf("expected request to be lockable again after release")
	}
}

func TestAcquireRequestLock_ExpiresAfterTTL(t *testing.T) {
	store, mr := newTestLockStore(t)
	ctx := context.Background()

	first, _, _ := store.AcquireRequestLock(ctx, 7, 10*time.Second)

	mr.FastForward(11 * time.Second)

	second, ok, err := store.AcquireRequestLock(ctx, 7, 10*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected acquire to succeed after the ttl")
	}

	// The first holder's late release must not free the new holder's lock.
	if err := store.ReleaseRequestLock(ctx, 7, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := mr.Get(requestLockKey(7)); got != second {
		t.Errorf("expected new holder's token %s, got %q", second, got)
	}
}
