package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := database.InitSchema(ctx, db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestDepartment inserts a department and fails the test on error
func CreateTestDepartment(t *testing.T, repo *database.Repository, name string) *models.Department {
	t.Helper()
	dept, err := repo.CreateDepartment(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create department %q: %v", name, err)
	}
	return dept
}

// CreateTestRole inserts a role and fails the test on error
func CreateTestRole(t *testing.T, repo *database.Repository, title, salary string, departmentID types.DepartmentID) *models.Role {
	t.Helper()
	role, err := repo.CreateRole(context.Background(), title, salary, departmentID)
	if err != nil {
		t.Fatalf("Failed to create role %q: %v", title, err)
	}
	return role
}

// CreateTestEmployee inserts an employee and fails the test on error
func CreateTestEmployee(t *testing.T, repo *database.Repository, first, last string, roleID types.RoleID, manager models.Manager) *models.Employee {
	t.Helper()
	emp, err := repo.CreateEmployee(context.Background(), first, last, roleID, manager)
	if err != nil {
		t.Fatalf("Failed to create employee %s %s: %v", first, last, err)
	}
	return emp
}
