package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// errRow is a row whose Scan always fails with err.
type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type scanner interface {
	Scan(dest ...any) error
}

func queryRow(ctx context.Context, q querier, builder sq.Sqlizer) scanner {
	query, args, err := builder.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)}
	}

	return q.QueryRowContext(ctx, query, args...)
}

func exec(ctx context.Context, q querier, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
