package database

import (
	"context"
	"database/sql"
	"log"
	"regexp"
)

// Queries are written once with Postgres placeholders ($1, $2, ...).
// SQLite accepts the same positions as ?1, ?2, ...
var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

func (d *DB) rebind(query string) string {
	if d.dialect != DialectSQLite {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?${1}")
}

// ExecContext runs a statement that returns no rows
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.conn.ExecContext(ctx, d.rebind(query), args...)
}

// QueryContext runs a statement and returns its rows in store order
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.conn.QueryContext(ctx, d.rebind(query), args...)
}

// QueryRowContext runs a statement expected to return at most one row
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.conn.QueryRowContext(ctx, d.rebind(query), args...)
}

// closeRows closes a result set, logging instead of returning the error
func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}
