package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface repositories run on. *pgxpool.Pool, pgx.Tx and the
// pgxmock pool all satisfy it, so the same repository works against the pool,
// inside a transaction, and under test.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions; *pgxpool.Pool and the pgxmock pool satisfy
// it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is the store's uniqueness-constraint
// signal.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// liveFilter is the soft-delete clause every read applies: a record is live
// while deleted_on is unset or still in the future.
const liveFilter = "(deleted_on IS NULL OR deleted_on > NOW())"
