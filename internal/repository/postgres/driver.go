package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxihail/internal/domain"
	"taxihail/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// NewDriverRepositoryWithTx creates a driver repository using a transaction.
func NewDriverRepositoryWithTx(tx *sql.Tx) *DriverRepository {
	return &DriverRepository{q: tx}
}

// Create adds a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `INSERT INTO drivers (id, name, available) VALUES ($1, $2, $3)`
	_, err := r.q.ExecContext(ctx, query, driver.ID, driver.Name, driver.Available)
	return err
}

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT id, COALESCE(name, ''), available FROM drivers WHERE id = $1`

	var driver domain.Driver
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&driver.ID,
		&driver.Name,
		&driver.Available,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &driver, nil
}

// GetAll retrieves all drivers.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT id, COALESCE(name, ''), available FROM drivers ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		var driver domain.Driver
		if err := rows.Scan(&driver.ID, &driver.Name, &driver.Available); err != nil {
			return nil, err
		}
		drivers = append(drivers, &driver)
	}
	return drivers, rows.Err()
}

// MarkUnavailable flips the driver to unavailable, succeeding only if
// the driver is currently available. The condition lives in the UPDATE
// itself; zero rows affected is the conflict signal, not a prompt for a
// separate read-then-write.
func (r *DriverRepository) MarkUnavailable(ctx context.Context, id string) error {
	query := `UPDATE drivers SET available = FALSE WHERE id = $1 AND available = TRUE`

	result, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return r.classifyNoEffect(ctx, id)
	}

	return nil
}

// MarkAvailable flips the driver back to available.
func (r *DriverRepository) MarkAvailable(ctx context.Context, id string) error {
	query := `UPDATE drivers SET available = TRUE WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// classifyNoEffect distinguishes a missing driver from one that failed
// the availability condition.
func (r *DriverRepository) classifyNoEffect(ctx context.Context, id string) error {
	var exists bool
	err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM drivers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}
	return repository.ErrConflict
}
