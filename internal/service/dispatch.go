package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"taxihail/internal/domain"
	"taxihail/internal/observability"
	"taxihail/internal/redis"
	"taxihail/internal/repository"
)

// rideLockTTL bounds how long an abandoned accept attempt can hold the
// fast-fail guard.
const rideLockTTL = 10 * time.Second

// DispatchService performs the atomic ride+driver state transitions.
//
// Accept and Complete are two-entity transactions: the ride status
// change and the driver availability flip either both apply or neither
// does. The conditions are pushed into the conditional updates inside a
// single unit of work, so concurrent callers on the same ride or driver
// serialize at the storage layer and callers on disjoint pairs never
// block each other.
type DispatchService struct {
	uowFactory repository.UnitOfWorkFactory
	lockStore  redis.LockStoreInterface
	cacheStore redis.CacheStoreInterface
}

// NewDispatchService creates a new DispatchService. lockStore and
// cacheStore are optional; nil disables the accept guard and the
// completed ride cache.
func NewDispatchService(
	uowFactory repository.UnitOfWorkFactory,
	lockStore redis.LockStoreInterface,
	cacheStore redis.CacheStoreInterface,
) *DispatchService {
	return &DispatchService{
		uowFactory: uowFactory,
		lockStore:  lockStore,
		cacheStore: cacheStore,
	}
}

// AcceptRequest contains the parameters for accepting a ride.
type AcceptRequest struct {
	RideID   string
	DriverID string
}

// Accept transitions the ride from pending to accepted, binds the
// driver, and flips the driver to unavailable, all in one transaction.
// Exactly one of any set of concurrent Accept calls on the same ride
// succeeds; the others receive ErrRideNotPending. There is no retry
// here; retrying a lost race is the caller's decision.
func (s *DispatchService) Accept(ctx context.Context, req AcceptRequest) (*domain.Ride, error) {
	if req.RideID == "" {
		return nil, ErrInvalidRideID
	}
	if req.DriverID == "" {
		return nil, ErrInvalidDriverID
	}

	// Fast-fail guard: a competing accept already holds this ride.
	// The conditional update below stays the authority either way, so a
	// failing lock store degrades to plain conditional updates instead
	// of failing the accept.
	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireRideLock(ctx, req.RideID, rideLockTTL)
		switch {
		case err != nil:
			log.Printf("ride lock unavailable, proceeding without guard: %v", err)
		case !locked:
			observability.AcceptConflictsTotal.Inc()
			return nil, fmt.Errorf("ride %s: %w", req.RideID, ErrRideNotPending)
		default:
			defer s.lockStore.ReleaseRideLock(ctx, req.RideID)
		}
	}

	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	err = uow.Rides().MarkAccepted(ctx, req.RideID, req.DriverID, time.Now())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("ride %s: %w", req.RideID, repository.ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		observability.AcceptConflictsTotal.Inc()
		return nil, fmt.Errorf("ride %s: %w", req.RideID, ErrRideNotPending)
	case err != nil:
		return nil, err
	}

	err = uow.Drivers().MarkUnavailable(ctx, req.DriverID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("driver %s: %w", req.DriverID, repository.ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		observability.AcceptConflictsTotal.Inc()
		return nil, fmt.Errorf("driver %s: %w", req.DriverID, ErrDriverUnavailable)
	case err != nil:
		return nil, err
	}

	// Read back inside the transaction for a consistent snapshot.
	ride, err := uow.Rides().GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	observability.RidesAcceptedTotal.Inc()
	return ride, nil
}

// CompleteRequest contains the parameters for completing a ride.
type CompleteRequest struct {
	RideID   string
	DriverID string
}

// Complete transitions the ride from accepted to completed and flips
// the driver back to available, in one transaction. Only the driver the
// ride is bound to may complete it; repeated Complete calls on a
// completed ride fail with ErrRideNotAccepted and never alter the
// completion timestamp.
func (s *DispatchService) Complete(ctx context.Context, req CompleteRequest) (*domain.Ride, error) {
	if req.RideID == "" {
		return nil, ErrInvalidRideID
	}
	if req.DriverID == "" {
		return nil, ErrInvalidDriverID
	}

	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	err = uow.Rides().MarkCompleted(ctx, req.RideID, req.DriverID, time.Now())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("ride %s: %w", req.RideID, repository.ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		return nil, s.classifyCompleteConflict(ctx, uow, req)
	case err != nil:
		return nil, err
	}

	err = uow.Drivers().MarkAvailable(ctx, req.DriverID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("driver %s: %w", req.DriverID, repository.ErrNotFound)
	case err != nil:
		return nil, err
	}

	ride, err := uow.Rides().GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	observability.RidesCompletedTotal.Inc()
	s.cacheCompleted(ctx, ride)

	return ride, nil
}

// classifyCompleteConflict reads the ride's current state to report why
// the conditional completion had no effect: bound to a different driver,
// or not in the accepted state at all.
func (s *DispatchService) classifyCompleteConflict(ctx context.Context, uow repository.UnitOfWork, req CompleteRequest) error {
	ride, err := uow.Rides().GetByID(ctx, req.RideID)
	if err != nil {
		return err
	}

	if ride.Status == domain.RideStatusAccepted && ride.DriverID != req.DriverID {
		return fmt.Errorf("ride %s: %w", req.RideID, ErrDriverMismatch)
	}
	return fmt.Errorf("ride %s is %s: %w", req.RideID, ride.Status, ErrRideNotAccepted)
}

// cacheCompleted stores the terminal record; completed rides are
// immutable so the cache cannot go stale. Best effort.
func (s *DispatchService) cacheCompleted(ctx context.Context, ride *domain.Ride) {
	if s.cacheStore == nil {
		return
	}
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
