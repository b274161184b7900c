package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*DepartmentRepo
	*RoleRepo
	*EmployeeRepo
}

// NewRepository creates a new Repository instance wrapping the given connection.
func NewRepository(db *DB) *Repository {
	return &Repository{
		DepartmentRepo: &DepartmentRepo{db: db},
		RoleRepo:       &RoleRepo{db: db},
		EmployeeRepo:   &EmployeeRepo{db: db},
	}
}

// Wrapper methods for DepartmentRepo
func (r *Repository) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	return r.DepartmentRepo.Create(ctx, name)
}

func (r *Repository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return r.DepartmentRepo.GetAll(ctx)
}

func (r *Repository) GetDepartmentByID(ctx context.Context, id types.DepartmentID) (*models.Department, error) {
	return r.DepartmentRepo.GetByID(ctx, id)
}

// Wrapper methods for RoleRepo
func (r *Repository) CreateRole(ctx context.Context, title, salary string, departmentID types.DepartmentID) (*models.Role, error) {
	return r.RoleRepo.Create(ctx, title, salary, departmentID)
}

func (r *Repository) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	return r.RoleRepo.GetAll(ctx)
}

func (r *Repository) GetRoleListings(ctx context.Context) ([]*models.RoleListing, error) {
	return r.RoleRepo.GetListings(ctx)
}

func (r *Repository) GetRoleByID(ctx context.Context, id types.RoleID) (*models.Role, error) {
	return r.RoleRepo.GetByID(ctx, id)
}

// Wrapper methods for EmployeeRepo
func (r *Repository) CreateEmployee(ctx context.Context, firstName, lastName string, roleID types.RoleID, manager models.Manager) (*models.Employee, error) {
	return r.EmployeeRepo.Create(ctx, firstName, lastName, roleID, manager)
}

func (r *Repository) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	return r.EmployeeRepo.GetAll(ctx)
}

func (r *Repository) GetEmployeeListings(ctx context.Context) ([]*models.EmployeeListing, error) {
	return r.EmployeeRepo.GetListings(ctx)
}

func (r *Repository) GetEmployeeByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error) {
	return r.EmployeeRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateEmployeeRole(ctx context.Context, id types.EmployeeID, roleID types.RoleID) error {
	return r.EmployeeRepo.UpdateRole(ctx, id, roleID)
}
