package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error)
	ReleaseRideLock(ctx context.Context, rideID string) error
}

// CacheStoreInterface defines the interface for the completed ride cache.
type CacheStoreInterface interface {
	GetCompletedRide(ctx context.Context, rideID string) (*CachedRide, error)
	SetCompletedRide(ctx context.Context, ride *CachedRide) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
