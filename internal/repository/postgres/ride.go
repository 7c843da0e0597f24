package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"taxihail/internal/domain"
	"taxihail/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

// Create persists a new ride in the pending state.
func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (id, passenger_id, driver_id, status, requested_at, accepted_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.PassengerID,
		nullString(ride.DriverID),
		ride.Status,
		ride.RequestedAt,
		nullTime(ride.AcceptedAt),
		nullTime(ride.CompletedAt),
	)

	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `
		SELECT id, passenger_id, driver_id, status, requested_at, accepted_at, completed_at
		FROM rides WHERE id = $1
	`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return ride, nil
}

// ListPending retrieves all pending rides ordered by request time
// ascending, id as tiebreak so listings are deterministic.
func (r *RideRepository) ListPending(ctx context.Context) ([]*domain.Ride, error) {
	query := `
		SELECT id, passenger_id, driver_id, status, requested_at, accepted_at, completed_at
		FROM rides WHERE status = $1 ORDER BY requested_at ASC, id ASC
	`

	rows, err := r.q.QueryContext(ctx, query, domain.RideStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// MarkAccepted transitions the ride from pending to accepted and binds
// the driver. The status condition is part of the UPDATE, so under
// concurrent accept attempts exactly one statement affects a row.
func (r *RideRepository) MarkAccepted(ctx context.Context, rideID, driverID string, acceptedAt time.Time) error {
	query := `
		UPDATE rides
		SET status = $1, driver_id = $2, accepted_at = $3
		WHERE id = $4 AND status = $5
	`

	result, err := r.q.ExecContext(ctx, query,
		domain.RideStatusAccepted, driverID, acceptedAt,
		rideID, domain.RideStatusPending,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return r.classifyNoEffect(ctx, rideID)
	}

	return nil
}

// MarkCompleted transitions the ride from accepted to completed,
// succeeding only for the driver the ride is bound to.
func (r *RideRepository) MarkCompleted(ctx context.Context, rideID, driverID string, completedAt time.Time) error {
	query := `
		UPDATE rides
		SET status = $1, completed_at = $2
		WHERE id = $3 AND status = $4 AND driver_id = $5
	`

	result, err := r.q.ExecContext(ctx, query,
		domain.RideStatusCompleted, completedAt,
		rideID, domain.RideStatusAccepted, driverID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return r.classifyNoEffect(ctx, rideID)
	}

	return nil
}

// classifyNoEffect distinguishes a missing ride from one that failed
// the status condition.
func (r *RideRepository) classifyNoEffect(ctx context.Context, id string) error {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM rides WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}
	return repository.ErrConflict
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var driverID sql.NullString
	var acceptedAt, completedAt sql.NullTime

	err := row.Scan(
		&ride.ID,
		&ride.PassengerID,
		&driverID,
		&ride.Status,
		&ride.RequestedAt,
		&acceptedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		ride.DriverID = driverID.String
	}
	if acceptedAt.Valid {
		ride.AcceptedAt = acceptedAt.Time
	}
	if completedAt.Valid {
		ride.CompletedAt = completedAt.Time
	}

	return &ride, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
