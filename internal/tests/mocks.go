package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"taxihail/internal/domain"
	"taxihail/internal/redis"
	"taxihail/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PASSENGER REPOSITORY
// ──────────────────────────────────────────────

// MockPassengerRepository is a mock implementation of PassengerRepository.
type MockPassengerRepository struct {
	mu         sync.RWMutex
	passengers map[string]*domain.Passenger

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockPassengerRepository creates a new mock passenger repository.
func NewMockPassengerRepository() *MockPassengerRepository {
	return &MockPassengerRepository{
		passengers: make(map[string]*domain.Passenger),
	}
}

// AddPassenger adds a passenger to the mock repository.
func (m *MockPassengerRepository) AddPassenger(passenger *domain.Passenger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[passenger.ID] = passenger
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[passenger.ID] = passenger
	return nil
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	passenger, ok := m.passengers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *passenger
	return &copy, nil
}

func (m *MockPassengerRepository) GetAll(ctx context.Context) ([]*domain.Passenger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Passenger, 0, len(m.passengers))
	for _, p := range m.passengers {
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK DRIVER REPOSITORY
// ──────────────────────────────────────────────

// MockDriverRepository is a mock implementation of DriverRepository.
type MockDriverRepository struct {
	mu      sync.RWMutex
	drivers map[string]*domain.Driver

	// Counters for verification
	MarkUnavailableCallCount int32
	MarkAvailableCallCount   int32

	// Error injection
	MarkUnavailableError error
	MarkAvailableError   error
}

// NewMockDriverRepository creates a new mock driver repository.
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{
		drivers: make(map[string]*domain.Driver),
	}
}

// AddDriver adds a driver to the mock repository.
func (m *MockDriverRepository) AddDriver(driver *domain.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[driver.ID] = driver
}

// GetDriver returns a driver for test assertions.
func (m *MockDriverRepository) GetDriver(id string) *domain.Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drivers[id]
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[driver.ID] = driver
	return nil
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	driver, ok := m.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *driver
	return &copy, nil
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		copy := *d
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockDriverRepository) MarkUnavailable(ctx context.Context, id string) error {
	atomic.AddInt32(&m.MarkUnavailableCallCount, 1)
	if m.MarkUnavailableError != nil {
		return m.MarkUnavailableError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	driver, ok := m.drivers[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !driver.Available {
		return repository.ErrConflict
	}
	driver.Available = false
	return nil
}

func (m *MockDriverRepository) MarkAvailable(ctx context.Context, id string) error {
	atomic.AddInt32(&m.MarkAvailableCallCount, 1)
	if m.MarkAvailableError != nil {
		return m.MarkAvailableError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	driver, ok := m.drivers[id]
	if !ok {
		return repository.ErrNotFound
	}
	driver.Available = true
	return nil
}

func (m *MockDriverRepository) snapshot() map[string]*domain.Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(map[string]*domain.Driver, len(m.drivers))
	for id, d := range m.drivers {
		copy := *d
		snap[id] = &copy
	}
	return snap
}

func (m *MockDriverRepository) restore(snap map[string]*domain.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers = snap
}

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockRideRepository is a mock implementation of RideRepository.
type MockRideRepository struct {
	mu    sync.RWMutex
	rides map[string]*domain.Ride

	// Counters for verification
	CreateCallCount       int32
	MarkAcceptedCallCount int32

	// Error injection
	CreateError       error
	MarkAcceptedError error
}

// NewMockRideRepository creates a new mock ride repository.
func NewMockRideRepository() *MockRideRepository {
	return &MockRideRepository{
		rides: make(map[string]*domain.Ride),
	}
}

// AddRide adds a ride to the mock repository.
func (m *MockRideRepository) AddRide(ride *domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
}

// GetRide returns a ride for test assertions.
func (m *MockRideRepository) GetRide(id string) *domain.Ride {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rides[id]
}

func (m *MockRideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
	return nil
}

func (m *MockRideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ride, ok := m.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *ride
	return &copy, nil
}

func (m *MockRideRepository) ListPending(ctx context.Context) ([]*domain.Ride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Ride
	for _, r := range m.rides {
		if r.Status == domain.RideStatusPending {
			copy := *r
			result = append(result, &copy)
		}
	}
	// Ordered by request time ascending, id as tiebreak.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].RequestedAt.Equal(result[j].RequestedAt) {
			return result[i].RequestedAt.Before(result[j].RequestedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MockRideRepository) MarkAccepted(ctx context.Context, rideID, driverID string, acceptedAt time.Time) error {
	atomic.AddInt32(&m.MarkAcceptedCallCount, 1)
	if m.MarkAcceptedError != nil {
		return m.MarkAcceptedError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[rideID]
	if !ok {
		return repository.ErrNotFound
	}
	if ride.Status != domain.RideStatusPending {
		return repository.ErrConflict
	}
	ride.Status = domain.RideStatusAccepted
	ride.DriverID = driverID
	ride.AcceptedAt = acceptedAt
	return nil
}

func (m *MockRideRepository) MarkCompleted(ctx context.Context, rideID, driverID string, completedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[rideID]
	if !ok {
		return repository.ErrNotFound
	}
	if ride.Status != domain.RideStatusAccepted || ride.DriverID != driverID {
		return repository.ErrConflict
	}
	ride.Status = domain.RideStatusCompleted
	ride.CompletedAt = completedAt
	return nil
}

func (m *MockRideRepository) snapshot() map[string]*domain.Ride {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(map[string]*domain.Ride, len(m.rides))
	for id, r := range m.rides {
		copy := *r
		snap[id] = &copy
	}
	return snap
}

func (m *MockRideRepository) restore(snap map[string]*domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides = snap
}

// ──────────────────────────────────────────────
// MOCK UNIT OF WORK
// ──────────────────────────────────────────────

// MockUnitOfWorkFactory produces units of work over the shared mock
// repositories. Each unit holds an exclusive lock from Begin until
// Commit or Rollback, which gives the same serialization guarantee the
// real store provides with row locks, and Rollback restores the
// pre-transaction snapshot so failed operations leave no partial state.
type MockUnitOfWorkFactory struct {
	mu      sync.Mutex
	Rides   *MockRideRepository
	Drivers *MockDriverRepository

	// Error injection
	BeginError  error
	CommitError error
}

// NewMockUnitOfWorkFactory creates a factory over the given repositories.
func NewMockUnitOfWorkFactory(rides *MockRideRepository, drivers *MockDriverRepository) *MockUnitOfWorkFactory {
	return &MockUnitOfWorkFactory{
		Rides:   rides,
		Drivers: drivers,
	}
}

func (f *MockUnitOfWorkFactory) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	if f.BeginError != nil {
		return nil, f.BeginError
	}
	f.mu.Lock()
	return &mockUnitOfWork{
		factory:    f,
		rideSnap:   f.Rides.snapshot(),
		driverSnap: f.Drivers.snapshot(),
	}, nil
}

type mockUnitOfWork struct {
	factory    *MockUnitOfWorkFactory
	rideSnap   map[string]*domain.Ride
	driverSnap map[string]*domain.Driver
	done       bool
}

func (u *mockUnitOfWork) Rides() repository.RideRepository {
	return u.factory.Rides
}

func (u *mockUnitOfWork) Drivers() repository.DriverRepository {
	return u.factory.Drivers
}

func (u *mockUnitOfWork) Commit() error {
	if u.factory.CommitError != nil {
		return u.factory.CommitError
	}
	u.done = true
	u.factory.mu.Unlock()
	return nil
}

func (u *mockUnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	u.factory.Rides.restore(u.rideSnap)
	u.factory.Drivers.restore(u.driverSnap)
	u.factory.mu.Unlock()
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of the Redis ride lock.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[rideID] {
		return false, nil
	}
	m.locks[rideID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseRideLock(ctx context.Context, rideID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, rideID)
	return nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is a mock implementation of the completed ride cache.
type MockCacheStore struct {
	mu    sync.Mutex
	rides map[string]*redis.CachedRide

	// Counters for verification
	SetCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		rides: make(map[string]*redis.CachedRide),
	}
}

func (m *MockCacheStore) GetCompletedRide(ctx context.Context, rideID string) (*redis.CachedRide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ride, ok := m.rides[rideID]
	if !ok {
		return nil, nil
	}
	copy := *ride
	return &copy, nil
}

func (m *MockCacheStore) SetCompletedRide(ctx context.Context, ride *redis.CachedRide) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides[ride.ID] = ride
	return nil
}
