package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another caller is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

func requestLockKey(requestID int64) string {
	return fmt.Sprintf("lock:ride_request:%d", requestID)
}

// AcquireRequestLock attempts to lock the ride request for recording a ride.
// Returns the lock token and true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRequestLock(ctx context.Context, requestID int64, ttl time.Duration) (string, bool, error) {
	token := uuid.New().String()

	ok, err := s.client.SetNX(ctx, requestLockKey(requestID), token, ttl).Result()
	if err != nil {
		return "", false, err
	}

	return token, ok, nil
}

// ReleaseRequestLock releases the lock if token still owns it.
func (s *LockStore) ReleaseRequestLock(ctx context.Context, requestID int64, token string) error {
	return releaseScript.Run(ctx, s.client, []string{requestLockKey(requestID)}, token).Err()
}
