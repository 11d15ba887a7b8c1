package redis

import (
	"context"
	"time"
)

// RequestLocker defines the interface for per ride request locking.
type RequestLocker interface {
	AcquireRequestLock(ctx context.Context, requestID int64, ttl time.Duration) (string, bool, error)
	ReleaseRequestLock(ctx context.Context, requestID int64, token string) error
}

// Ensure concrete types implement interfaces.
var _ RequestLocker = (*LockStore)(nil)
