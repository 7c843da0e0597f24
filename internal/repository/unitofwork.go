package repository

import "context"

// UnitOfWork is a transaction boundary over ride and driver state. The
// repositories it exposes are bound to the same underlying transaction,
// so a ride transition and the matching driver availability flip are
// observed by other callers either both applied or not at all.
type UnitOfWork interface {
	// Rides returns a RideRepository bound to this transaction.
	Rides() RideRepository

	// Drivers returns a DriverRepository bound to this transaction.
	Drivers() DriverRepository

	// Commit commits the transaction.
	Commit() error

	// Rollback aborts the transaction. Calling it after a successful
	// Commit is a no-op, which allows the deferred-rollback idiom.
	Rollback() error
}

// UnitOfWorkFactory opens new units of work, one per operation.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
