package database

import (
	"context"
	"embed"
	"fmt"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// schemaScript returns the table definitions for the dialect
func schemaScript(dialect Dialect) (string, error) {
	name := "schema/postgres.sql"
	if dialect == DialectSQLite {
		name = "schema/sqlite.sql"
	}

	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// InitSchema applies the schema script verbatim. Every statement is
// CREATE TABLE IF NOT EXISTS, so running it again is harmless.
func InitSchema(ctx context.Context, db *DB) error {
	script, err := schemaScript(db.dialect)
	if err != nil {
		return err
	}

	// Sent as-is: the script has no placeholders to rebind
	if _, err := db.conn.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
