package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore caches completed rides in Redis.
//
// Only terminal records are cached. A completed ride never changes
// again, so a hit can never serve a stale transition; everything else
// is read straight from the database.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// CompletedRideTTL bounds memory use; correctness does not depend on it.
const CompletedRideTTL = 10 * time.Minute

const completedRidePrefix = "cache:ride:completed:"

// CachedRide represents a cached completed ride.
type CachedRide struct {
	ID          string    `json:"id"`
	PassengerID string    `json:"passenger_id"`
	DriverID    string    `json:"driver_id"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	AcceptedAt  time.Time `json:"accepted_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// GetCompletedRide retrieves a completed ride from cache.
// Returns (nil, nil) on a cache miss.
func (s *CacheStore) GetCompletedRide(ctx context.Context, rideID string) (*CachedRide, error) {
	key := completedRidePrefix + rideID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var ride CachedRide
	if err := json.Unmarshal(data, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

// SetCompletedRide stores a completed ride in cache.
func (s *CacheStore) SetCompletedRide(ctx context.Context, ride *CachedRide) error {
	key := completedRidePrefix + ride.ID
	data, err := json.Marshal(ride)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, CompletedRideTTL).Err()
}
