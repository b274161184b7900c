package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// DepartmentReader defines read operations for departments.
type DepartmentReader interface {
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id types.DepartmentID) (*models.Department, error)
}

// DepartmentWriter defines write operations for departments.
type DepartmentWriter interface {
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
}

// DepartmentRepository combines all department-related operations.
type DepartmentRepository interface {
	DepartmentReader
	DepartmentWriter
}

// RoleReader defines read operations for roles.
type RoleReader interface {
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetRoleListings(ctx context.Context) ([]*models.RoleListing, error)
	GetRoleByID(ctx context.Context, id types.RoleID) (*models.Role, error)
}

// RoleWriter defines write operations for roles.
type RoleWriter interface {
	CreateRole(ctx context.Context, title, salary string, departmentID types.DepartmentID) (*models.Role, error)
}

// RoleRepository combines all role-related operations.
type RoleRepository interface {
	RoleReader
	RoleWriter
}

// EmployeeReader defines read operations for employees.
type EmployeeReader interface {
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeListings(ctx context.Context) ([]*models.EmployeeListing, error)
	GetEmployeeByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error)
}

// EmployeeWriter defines write operations for employees.
type EmployeeWriter interface {
	CreateEmployee(ctx context.Context, firstName, lastName string, roleID types.RoleID, manager models.Manager) (*models.Employee, error)
	UpdateEmployeeRole(ctx context.Context, id types.EmployeeID, roleID types.RoleID) error
}

// EmployeeRepository combines all employee-related operations.
type EmployeeRepository interface {
	EmployeeReader
	EmployeeWriter
}
