package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxihail/internal/domain"
	"taxihail/internal/repository"
)

// RegistrationService creates passenger and driver records and serves
// the listing reads for both.
type RegistrationService struct {
	passengerRepo repository.PassengerRepository
	driverRepo    repository.DriverRepository
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	passengerRepo repository.PassengerRepository,
	driverRepo repository.DriverRepository,
) *RegistrationService {
	return &RegistrationService{
		passengerRepo: passengerRepo,
		driverRepo:    driverRepo,
	}
}

// RegisterPassenger creates a new passenger.
func (s *RegistrationService) RegisterPassenger(ctx context.Context, name string) (*domain.Passenger, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	passenger := &domain.Passenger{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.passengerRepo.Create(ctx, passenger); err != nil {
		return nil, err
	}

	return passenger, nil
}

// ListPassengers retrieves all registered passengers.
func (s *RegistrationService) ListPassengers(ctx context.Context) ([]*domain.Passenger, error) {
	return s.passengerRepo.GetAll(ctx)
}

// RegisterDriver creates a new driver. Drivers come online available;
// only dispatch flips the flag.
func (s *RegistrationService) RegisterDriver(ctx context.Context, name string) (*domain.Driver, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	driver := &domain.Driver{
		ID:        uuid.New().String(),
		Name:      name,
		Available: true,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// ListDrivers retrieves all registered drivers.
func (s *RegistrationService) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}
