package repository

import (
	"context"
	"database/sql"
	"time"
)

// dbtx is the subset of *sql.DB / *sql.Tx the repositories need.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
