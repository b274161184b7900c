// Package database handles the connection to the relational store, the
// schema applied at startup, and the queries issued by each repository
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/lib/pq"
	"github.com/thenoetrevino/roster/internal/config"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder syntax and the schema script
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

func (d Dialect) String() string {
	if d == DialectSQLite {
		return config.DriverSQLite
	}
	return config.DriverPostgres
}

// DB is the single long-lived connection to the store. Every query issued by
// the repositories goes through it.
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Open opens the store described by cfg. The connection itself is lazy; call
// Ping to find out whether the store is reachable.
func Open(ctx context.Context, cfg config.Database) (*DB, error) {
	if cfg.Driver == config.DriverSQLite {
		return OpenSQLite(ctx, cfg.Name)
	}

	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return newDB(conn, DialectPostgres), nil
}

// OpenSQLite opens a SQLite file (or ":memory:") with foreign keys enforced
// on every connection
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := newDB(conn, DialectSQLite)

	// The pragma is applied per connection; fail early if the driver ignored it
	var enabled int
	if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("foreign key enforcement is disabled for %s", path)
	}

	return db, nil
}

// Wrap adopts an already opened *sql.DB
func Wrap(conn *sql.DB, dialect Dialect) *DB {
	return newDB(conn, dialect)
}

func newDB(conn *sql.DB, dialect Dialect) *DB {
	// One connection for the whole session; statements never overlap
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	return &DB{conn: conn, dialect: dialect}
}

// Dialect reports which store the connection talks to
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// Ping verifies the store is reachable
func (d *DB) Ping(ctx context.Context) error {
	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection
func (d *DB) Close() error {
	return d.conn.Close()
}
