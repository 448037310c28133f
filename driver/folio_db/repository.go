package folio_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock
// satisfies it, which keeps the drivers testable without a live database.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository wraps the folio database. A Repository with a nil pool is
// valid: it reports itself unconfigured and every call fails with
// ErrStoreUnavailable, which the read paths translate into the static
// fallback.
type Repository struct {
	pool DBPool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		return &Repository{}
	}
	return &Repository{pool: pool}
}

// Configured reports whether a database connection is wired.
func (r *Repository) Configured() bool {
	return r != nil && r.pool != nil
}
