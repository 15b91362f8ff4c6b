package db

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/casualdesk/website/internal/db/queries"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var driver = "sqlite"

// Database wraps sqlc queries with the shared connection.
type Database struct {
	*queries.Queries
	db *sql.DB
}

// Option adjusts how the database connection is opened.
type Option func(*options)

type options struct {
	logTiming bool
}

// WithQueryTiming enables slow-query logging on the wrapped connection.
func WithQueryTiming() Option {
	return func(o *options) { o.logTiming = true }
}

// New opens the SQLite database at the provided path and runs migrations.
func New(path string, opts ...Option) (*Database, error) {
	if path == "" {
		path = "data/cdgsite"
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open(driver, sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(driver); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var dbtx queries.DBTX = db
	if o.logTiming {
		dbtx = newTimedDBTX(db)
	}

	return &Database{db: db, Queries: queries.New(dbtx)}, nil
}

func sqliteDSN(path string) string {
	values := url.Values{}
	values.Set("_fk", "1")

	values.Add("_pragma", "foreign_keys(ON)")
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "synchronous(NORMAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	values.Add("_pragma", "temp_store(MEMORY)")

	if strings.HasSuffix(path, ".sqlite") {
		return fmt.Sprintf("file:%s?%s", path, values.Encode())
	}
	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Close closes the underlying database connection.
func (c *Database) Close() error {
	return c.db.Close()
}
