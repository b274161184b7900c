package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and applies the schema
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	db, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	return db
}

// ============================================================================
// FIXTURE HELPERS
// ============================================================================

func createTestDepartment(t *testing.T, repo *Repository, name string) *models.Department {
	t.Helper()
	department, err := repo.CreateDepartment(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create department %q: %v", name, err)
	}
	return department
}

func createTestRole(t *testing.T, repo *Repository, title, salary string, departmentID types.DepartmentID) *models.Role {
	t.Helper()
	role, err := repo.CreateRole(context.Background(), title, salary, departmentID)
	if err != nil {
		t.Fatalf("Failed to create role %q: %v", title, err)
	}
	return role
}

func createTestEmployee(t *testing.T, repo *Repository, first, last string, roleID types.RoleID, manager models.Manager) *models.Employee {
	t.Helper()
	employee, err := repo.CreateEmployee(context.Background(), first, last, roleID, manager)
	if err != nil {
		t.Fatalf("Failed to create employee %s %s: %v", first, last, err)
	}
	return employee
}
