package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxihail/internal/domain"
	"taxihail/internal/redis"
	"taxihail/internal/repository"
	"taxihail/internal/service"
)

func newRideFixture() (*service.RideService, *MockRideRepository, *MockPassengerRepository) {
	rideRepo := NewMockRideRepository()
	passengerRepo := NewMockPassengerRepository()
	rides := service.NewRideService(rideRepo, passengerRepo, nil)
	return rides, rideRepo, passengerRepo
}

// ──────────────────────────────────────────────
// REQUEST RIDE
// ──────────────────────────────────────────────

func TestRequestRide_ExistingPassenger_CreatesPendingRide(t *testing.T) {
	t.Parallel()

	rides, rideRepo, passengerRepo := newRideFixture()
	passengerRepo.AddPassenger(&domain.Passenger{ID: "passenger-1", Name: "Pat"})

	before := time.Now()
	ride, err := rides.RequestRide(context.Background(), service.RequestRideRequest{
		PassengerID: "passenger-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if ride.ID == "" {
		t.Error("expected a generated ride id")
	}
	if ride.Status != domain.RideStatusPending {
		t.Errorf("expected status %s, got %s", domain.RideStatusPending, ride.Status)
	}
	if ride.PassengerID != "passenger-1" {
		t.Errorf("expected passenger-1, got %s", ride.PassengerID)
	}
	if ride.DriverID != "" {
		t.Errorf("expected no driver on a fresh ride, got %q", ride.DriverID)
	}
	if ride.RequestedAt.Before(before) {
		t.Error("expected requested_at to be stamped at creation")
	}

	if rideRepo.GetRide(ride.ID) == nil {
		t.Error("expected ride to be persisted")
	}
}

func TestRequestRide_UnknownPassenger_NotFound(t *testing.T) {
	t.Parallel()

	rides, rideRepo, _ := newRideFixture()

	_, err := rides.RequestRide(context.Background(), service.RequestRideRequest{
		PassengerID: "passenger-999",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if rideRepo.CreateCallCount != 0 {
		t.Error("expected no ride to be created")
	}
}

func TestRequestRide_EmptyPassengerID_Rejected(t *testing.T) {
	t.Parallel()

	rides, _, _ := newRideFixture()

	_, err := rides.RequestRide(context.Background(), service.RequestRideRequest{})
	if !errors.Is(err, service.ErrInvalidPassengerID) {
		t.Fatalf("expected ErrInvalidPassengerID, got: %v", err)
	}
}

// ──────────────────────────────────────────────
// LIST PENDING RIDES
// ──────────────────────────────────────────────

func TestListPendingRides_OrderedByRequestTime(t *testing.T) {
	t.Parallel()

	rides, rideRepo, _ := newRideFixture()
	base := time.Now()

	rideRepo.AddRide(&domain.Ride{
		ID: "ride-late", PassengerID: "passenger-1",
		Status: domain.RideStatusPending, RequestedAt: base.Add(2 * time.Minute),
	})
	rideRepo.AddRide(&domain.Ride{
		ID: "ride-early", PassengerID: "passenger-2",
		Status: domain.RideStatusPending, RequestedAt: base,
	})
	rideRepo.AddRide(&domain.Ride{
		ID: "ride-mid", PassengerID: "passenger-3",
		Status: domain.RideStatusPending, RequestedAt: base.Add(time.Minute),
	})
	rideRepo.AddRide(&domain.Ride{
		ID: "ride-taken", PassengerID: "passenger-4", DriverID: "driver-1",
		Status: domain.RideStatusAccepted, RequestedAt: base.Add(-time.Minute), AcceptedAt: base,
	})

	pending, err := rides.ListPendingRides(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := []string{"ride-early", "ride-mid", "ride-late"}
	if len(pending) != len(want) {
		t.Fatalf("expected %d pending rides, got %d", len(want), len(pending))
	}
	for i, id := range want {
		if pending[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, pending[i].ID)
		}
	}
}

func TestListPendingRides_Empty(t *testing.T) {
	t.Parallel()

	rides, _, _ := newRideFixture()

	pending, err := rides.ListPendingRides(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending rides, got %d", len(pending))
	}
}

// ──────────────────────────────────────────────
// GET RIDE STATUS
// ──────────────────────────────────────────────

func TestGetRideStatus_ReturnsCurrentRecord(t *testing.T) {
	t.Parallel()

	rides, rideRepo, _ := newRideFixture()
	rideRepo.AddRide(&domain.Ride{
		ID: "ride-1", PassengerID: "passenger-1", DriverID: "driver-1",
		Status: domain.RideStatusAccepted, RequestedAt: time.Now(), AcceptedAt: time.Now(),
	})

	ride, err := rides.GetRideStatus(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ride.Status != domain.RideStatusAccepted {
		t.Errorf("expected accepted, got %s", ride.Status)
	}
	if ride.DriverID != "driver-1" {
		t.Errorf("expected driver-1, got %s", ride.DriverID)
	}
}

func TestGetRideStatus_UnknownRide_NotFound(t *testing.T) {
	t.Parallel()

	rides, _, _ := newRideFixture()

	_, err := rides.GetRideStatus(context.Background(), "ride-999")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestGetRideStatus_EmptyID_Rejected(t *testing.T) {
	t.Parallel()

	rides, _, _ := newRideFixture()

	_, err := rides.GetRideStatus(context.Background(), "")
	if !errors.Is(err, service.ErrInvalidRideID) {
		t.Fatalf("expected ErrInvalidRideID, got: %v", err)
	}
}

func TestGetRideStatus_CompletedRide_PopulatesCache(t *testing.T) {
	t.Parallel()

	rideRepo := NewMockRideRepository()
	passengerRepo := NewMockPassengerRepository()
	cacheStore := NewMockCacheStore()
	rides := service.NewRideService(rideRepo, passengerRepo, cacheStore)

	rideRepo.AddRide(&domain.Ride{
		ID: "ride-1", PassengerID: "passenger-1", DriverID: "driver-1",
		Status: domain.RideStatusCompleted, RequestedAt: time.Now(),
		AcceptedAt: time.Now(), CompletedAt: time.Now(),
	})

	ride, err := rides.GetRideStatus(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected completed, got %s", ride.Status)
	}
	if cacheStore.SetCallCount != 1 {
		t.Errorf("expected 1 cache write, got %d", cacheStore.SetCallCount)
	}

	cached, _ := cacheStore.GetCompletedRide(context.Background(), "ride-1")
	if cached == nil || cached.Status != string(domain.RideStatusCompleted) {
		t.Error("expected completed ride in cache")
	}
}

func TestGetRideStatus_CacheHit_SkipsStore(t *testing.T) {
	t.Parallel()

	rideRepo := NewMockRideRepository()
	passengerRepo := NewMockPassengerRepository()
	cacheStore := NewMockCacheStore()
	rides := service.NewRideService(rideRepo, passengerRepo, cacheStore)

	completedAt := time.Now()
	cacheStore.SetCompletedRide(context.Background(), &redis.CachedRide{
		ID:          "ride-1",
		PassengerID: "passenger-1",
		DriverID:    "driver-1",
		Status:      string(domain.RideStatusCompleted),
		RequestedAt: completedAt.Add(-time.Hour),
		AcceptedAt:  completedAt.Add(-30 * time.Minute),
		CompletedAt: completedAt,
	})

	// The ride is deliberately absent from the store; a hit must not
	// fall through.
	ride, err := rides.GetRideStatus(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("expected cache hit, got: %v", err)
	}
	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected completed, got %s", ride.Status)
	}
	if !ride.CompletedAt.Equal(completedAt) {
		t.Error("expected cached completed_at to round-trip")
	}

	// An accepted ride is never cached, so its reads always hit the store.
	rideRepo.AddRide(&domain.Ride{
		ID: "ride-2", PassengerID: "passenger-1", DriverID: "driver-1",
		Status: domain.RideStatusAccepted, RequestedAt: time.Now(), AcceptedAt: time.Now(),
	})
	if _, err := rides.GetRideStatus(context.Background(), "ride-2"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cacheStore.SetCallCount != 1 {
		t.Errorf("expected no cache write for a non-terminal ride, got %d", cacheStore.SetCallCount)
	}
}
