package db

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/casualdesk/website/internal/db/queries"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 100 * time.Millisecond

type timedDBTX struct {
	inner queries.DBTX
}

func newTimedDBTX(inner queries.DBTX) queries.DBTX {
	return &timedDBTX{inner: inner}
}

func (d *timedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.inner.ExecContext(ctx, query, args...)
	logQueryDuration(ctx, queryName(query), time.Since(start), err)
	return result, err
}

func (d *timedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	start := time.Now()
	stmt, err := d.inner.PrepareContext(ctx, query)
	logQueryDuration(ctx, queryName(query), time.Since(start), err)
	return stmt, err
}

func (d *timedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	logQueryDuration(ctx, queryName(query), time.Since(start), err)
	return rows, err
}

func (d *timedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	logQueryDuration(ctx, queryName(query), time.Since(start), nil)
	return row
}

func logQueryDuration(ctx context.Context, name string, duration time.Duration, err error) {
	if err != nil {
		slog.DebugContext(ctx, "query failed", "query", name, "duration", duration, "error", err)
		return
	}
	if duration >= slowQueryThreshold {
		slog.WarnContext(ctx, "slow query", "query", name, "duration", duration)
		return
	}
	slog.DebugContext(ctx, "query", "query", name, "duration", duration)
}

func queryName(query string) string {
	lines := strings.Split(strings.TrimSpace(query), "\n")
	if len(lines) == 0 {
		return "unknown"
	}
	first := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(first, "-- name:") {
		return "unknown"
	}
	parts := strings.Fields(first)
	if len(parts) < 3 {
		return "unknown"
	}
	return parts[2]
}
