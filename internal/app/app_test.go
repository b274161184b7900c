package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/roster/internal/database"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.DepartmentService == nil {
		t.Error("Expected DepartmentService to be initialized")
	}
	if app.RoleService == nil {
		t.Error("Expected RoleService to be initialized")
	}
	if app.EmployeeService == nil {
		t.Error("Expected EmployeeService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be initialized")
	}
	if app.Logger() == nil {
		t.Error("Expected Logger to default to slog.Default()")
	}
}

func TestNewWithOptions(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	logger := slog.New(slog.DiscardHandler)
	repo := database.NewRepository(db)

	app := New(db, WithLogger(logger), WithDataStore(repo))

	if app.Logger() != logger {
		t.Error("Expected WithLogger to set the logger")
	}
	if app.Repo() != repo {
		t.Error("Expected WithDataStore to set the repository")
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)
	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got %v", err)
	}

	if err := db.Ping(context.Background()); err == nil {
		t.Error("Expected ping to fail after Close")
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	app := New(nil, WithDataStore(database.NewRepository(nil)))

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close without a connection to be a no-op, got %v", err)
	}
}
