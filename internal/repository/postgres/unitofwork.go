package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxihail/internal/repository"
)

// UnitOfWorkFactory opens sql.Tx-backed units of work.
type UnitOfWorkFactory struct {
	db *sql.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory.
func NewUnitOfWorkFactory(db *sql.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Begin starts a database transaction and returns a unit of work whose
// repositories are bound to it.
func (f *UnitOfWorkFactory) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &unitOfWork{
		tx:      tx,
		rides:   NewRideRepositoryWithTx(tx),
		drivers: NewDriverRepositoryWithTx(tx),
	}, nil
}

// unitOfWork implements repository.UnitOfWork over a sql.Tx.
type unitOfWork struct {
	tx      *sql.Tx
	rides   *RideRepository
	drivers *DriverRepository
}

func (u *unitOfWork) Rides() repository.RideRepository {
	return u.rides
}

func (u *unitOfWork) Drivers() repository.DriverRepository {
	return u.drivers
}

func (u *unitOfWork) Commit() error {
	return u.tx.Commit()
}

func (u *unitOfWork) Rollback() error {
	err := u.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		// Already committed or rolled back; safe under deferred rollback.
		return nil
	}
	return err
}

// Ensure interfaces are satisfied.
var (
	_ repository.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
	_ repository.UnitOfWork        = (*unitOfWork)(nil)
)
