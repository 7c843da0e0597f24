package repository

import (
	"context"

	"taxihail/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
//
// There is deliberately no unconditional availability setter: the flag
// changes only through the conditional operations below, inside the
// same unit of work as the matching ride transition.
type DriverRepository interface {
	// Create adds a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// MarkUnavailable flips the driver to unavailable, succeeding only
	// if the driver is currently available. Returns ErrNotFound if the
	// driver does not exist and ErrConflict if it is already taken.
	MarkUnavailable(ctx context.Context, id string) error

	// MarkAvailable flips the driver back to available. Returns
	// ErrNotFound if the driver does not exist.
	MarkAvailable(ctx context.Context, id string) error
}
