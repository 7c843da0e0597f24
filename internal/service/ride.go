package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxihail/internal/domain"
	"taxihail/internal/observability"
	"taxihail/internal/redis"
	"taxihail/internal/repository"
)

// RideService handles ride requests and the read paths.
type RideService struct {
	rideRepo      repository.RideRepository
	passengerRepo repository.PassengerRepository
	cacheStore    redis.CacheStoreInterface
}

// NewRideService creates a new RideService. cacheStore is optional.
func NewRideService(
	rideRepo repository.RideRepository,
	passengerRepo repository.PassengerRepository,
	cacheStore redis.CacheStoreInterface,
) *RideService {
	return &RideService{
		rideRepo:      rideRepo,
		passengerRepo: passengerRepo,
		cacheStore:    cacheStore,
	}
}

// RequestRideRequest contains the parameters for requesting a ride.
type RequestRideRequest struct {
	PassengerID string
}

// RequestRide creates a new ride in the pending state for an existing
// passenger.
func (s *RideService) RequestRide(ctx context.Context, req RequestRideRequest) (*domain.Ride, error) {
	if req.PassengerID == "" {
		return nil, ErrInvalidPassengerID
	}

	if _, err := s.passengerRepo.GetByID(ctx, req.PassengerID); err != nil {
		return nil, fmt.Errorf("passenger %s: %w", req.PassengerID, err)
	}

	ride := &domain.Ride{
		ID:          uuid.New().String(),
		PassengerID: req.PassengerID,
		Status:      domain.RideStatusPending,
		RequestedAt: time.Now(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	observability.RidesRequestedTotal.Inc()
	return ride, nil
}

// ListPendingRides retrieves all pending rides ordered by request time
// ascending. Pure read, no side effects.
func (s *RideService) ListPendingRides(ctx context.Context) ([]*domain.Ride, error) {
	return s.rideRepo.ListPending(ctx)
}

// GetRideStatus retrieves the current record of a ride. Completed rides
// may be served from cache; they are terminal, so a hit is never stale.
func (s *RideService) GetRideStatus(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetCompletedRide(ctx, rideID)
		if err == nil && cached != nil {
			return &domain.Ride{
				ID:          cached.ID,
				PassengerID: cached.PassengerID,
				DriverID:    cached.DriverID,
				Status:      domain.RideStatus(cached.Status),
				RequestedAt: cached.RequestedAt,
				AcceptedAt:  cached.AcceptedAt,
				CompletedAt: cached.CompletedAt,
			}, nil
		}
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("ride %s: %w", rideID, err)
	}

	if s.cacheStore != nil && ride.Status.Terminal() {
		_ = s.cacheStore.SetCompletedRide(ctx, &redis.CachedRide{
			ID:          ride.ID,
			PassengerID: ride.PassengerID,
			DriverID:    ride.DriverID,
			Status:      string(ride.Status),
			RequestedAt: ride.RequestedAt,
			AcceptedAt:  ride.AcceptedAt,
			CompletedAt: ride.CompletedAt,
		})
	}

	return ride, nil
}
