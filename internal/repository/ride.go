package repository

import (
	"context"
	"time"

	"taxihail/internal/domain"
)

// RideRepository defines the persistence operations for rides.
//
// Status never changes through a plain update; MarkAccepted and
// MarkCompleted are compare-and-swap operations keyed on the expected
// prior state, so concurrent callers cannot reintroduce the
// check-then-act race at this boundary.
type RideRepository interface {
	// Create persists a new ride in the pending state.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// ListPending retrieves all pending rides ordered by request time
	// ascending.
	ListPending(ctx context.Context) ([]*domain.Ride, error)

	// MarkAccepted transitions the ride from pending to accepted,
	// binding the driver and stamping acceptedAt. It succeeds only if
	// the ride is currently pending: ErrNotFound if the ride does not
	// exist, ErrConflict if it is no longer pending.
	MarkAccepted(ctx context.Context, rideID, driverID string, acceptedAt time.Time) error

	// MarkCompleted transitions the ride from accepted to completed,
	// stamping completedAt. It succeeds only if the ride is currently
	// accepted and bound to driverID: ErrNotFound if the ride does not
	// exist, ErrConflict otherwise.
	MarkCompleted(ctx context.Context, rideID, driverID string, completedAt time.Time) error
}
