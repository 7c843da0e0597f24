package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
//
// The ride lock is a best-effort guard that lets concurrent accept
// attempts on the same ride fail fast before opening a database
// transaction. Exclusivity never depends on it: the conditional update
// in the store is the authority, and the lock expires via TTL.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireRideLock attempts to acquire a lock for the given ride.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:ride:%s", rideID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRideLock releases the lock for the given ride.
func (s *LockStore) ReleaseRideLock(ctx context.Context, rideID string) error {
	key := fmt.Sprintf("lock:ride:%s", rideID)

	return s.client.Del(ctx, key).Err()
}
