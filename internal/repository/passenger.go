package repository

import (
	"context"

	"taxihail/internal/domain"
)

// PassengerRepository defines the persistence operations for passengers.
type PassengerRepository interface {
	// Create persists a new passenger.
	Create(ctx context.Context, passenger *domain.Passenger) error

	// GetByID retrieves a passenger by ID.
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)

	// GetAll retrieves all passengers.
	GetAll(ctx context.Context) ([]*domain.Passenger, error)
}
