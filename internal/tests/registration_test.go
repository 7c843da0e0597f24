package tests

import (
	"context"
	"errors"
	"testing"

	"taxihail/internal/service"
)

func newRegistrationFixture() (*service.RegistrationService, *MockPassengerRepository, *MockDriverRepository) {
	passengerRepo := NewMockPassengerRepository()
	driverRepo := NewMockDriverRepository()
	return service.NewRegistrationService(passengerRepo, driverRepo), passengerRepo, driverRepo
}

// ──────────────────────────────────────────────
// REGISTRATION
// ──────────────────────────────────────────────

func TestRegisterPassenger_CreatesRecord(t *testing.T) {
	t.Parallel()

	registration, passengerRepo, _ := newRegistrationFixture()

	passenger, err := registration.RegisterPassenger(context.Background(), "Pat")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if passenger.ID == "" {
		t.Error("expected a generated passenger id")
	}
	if passenger.Name != "Pat" {
		t.Errorf("expected name Pat, got %s", passenger.Name)
	}
	if passenger.CreatedAt.IsZero() {
		t.Error("expected created_at to be stamped")
	}
	if passengerRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create, got %d", passengerRepo.CreateCallCount)
	}
}

func TestRegisterPassenger_EmptyName_Rejected(t *testing.T) {
	t.Parallel()

	registration, passengerRepo, _ := newRegistrationFixture()

	_, err := registration.RegisterPassenger(context.Background(), "")
	if !errors.Is(err, service.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got: %v", err)
	}
	if passengerRepo.CreateCallCount != 0 {
		t.Error("expected no record to be created")
	}
}

func TestRegisterDriver_ComesOnlineAvailable(t *testing.T) {
	t.Parallel()

	registration, _, driverRepo := newRegistrationFixture()

	driver, err := registration.RegisterDriver(context.Background(), "Dana")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !driver.Available {
		t.Error("expected a fresh driver to be available")
	}
	if got := driverRepo.GetDriver(driver.ID); got == nil || !got.Available {
		t.Error("expected driver to be persisted as available")
	}
}

func TestRegisterDriver_EmptyName_Rejected(t *testing.T) {
	t.Parallel()

	registration, _, _ := newRegistrationFixture()

	_, err := registration.RegisterDriver(context.Background(), "")
	if !errors.Is(err, service.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got: %v", err)
	}
}

func TestListPassengersAndDrivers(t *testing.T) {
	t.Parallel()

	registration, _, _ := newRegistrationFixture()
	ctx := context.Background()

	for _, name := range []string{"Pat", "Sam"} {
		if _, err := registration.RegisterPassenger(ctx, name); err != nil {
			t.Fatalf("register passenger %s: %v", name, err)
		}
	}
	if _, err := registration.RegisterDriver(ctx, "Dana"); err != nil {
		t.Fatalf("register driver: %v", err)
	}

	passengers, err := registration.ListPassengers(ctx)
	if err != nil {
		t.Fatalf("list passengers: %v", err)
	}
	if len(passengers) != 2 {
		t.Errorf("expected 2 passengers, got %d", len(passengers))
	}

	drivers, err := registration.ListDrivers(ctx)
	if err != nil {
		t.Fatalf("list drivers: %v", err)
	}
	if len(drivers) != 1 {
		t.Errorf("expected 1 driver, got %d", len(drivers))
	}
}
