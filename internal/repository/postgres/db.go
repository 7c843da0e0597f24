package postgres

import (
	"context"
	"database/sql"
)

// Querier is the slice of database/sql that the repositories need.
// *sql.DB and *sql.Tx both provide it, so the same repository code
// serves standalone reads and the unit-of-work transactions.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Both handle types must keep satisfying Querier.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
