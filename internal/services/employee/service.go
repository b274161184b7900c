package employee

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// Service defines all employee-related business operations
type Service interface {
	// Read operations
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeListings(ctx context.Context) ([]*models.EmployeeListing, error)
	GetEmployeeByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error)

	// Write operations
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployeeRole(ctx context.Context, req UpdateEmployeeRoleRequest) error
}

// CreateEmployeeRequest encapsulates data for creating an employee
type CreateEmployeeRequest struct {
	FirstName string
	LastName  string
	RoleID    types.RoleID
	Manager   models.Manager
}

// UpdateEmployeeRoleRequest moves one employee to another role
type UpdateEmployeeRoleRequest struct {
	EmployeeID types.EmployeeID
	RoleID     types.RoleID
}

// repository defines the data access methods needed by the employee service
type repository interface {
	CreateEmployee(ctx context.Context, firstName, lastName string, roleID types.RoleID, manager models.Manager) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeListings(ctx context.Context) ([]*models.EmployeeListing, error)
	GetEmployeeByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error)
	UpdateEmployeeRole(ctx context.Context, id types.EmployeeID, roleID types.RoleID) error
}

type service struct {
	repo repository
}

// NewService creates a new employee service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllEmployees retrieves all employees
func (s *service) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.repo.GetAllEmployees(ctx)
}

// GetEmployeeListings retrieves all employees with role, department and manager
func (s *service) GetEmployeeListings(ctx context.Context) ([]*models.EmployeeListing, error) {
	return s.repo.GetEmployeeListings(ctx)
}

// GetEmployeeByID retrieves a specific employee
func (s *service) GetEmployeeByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error) {
	if !id.Valid() {
		return nil, ErrInvalidEmployeeID
	}
	return s.repo.GetEmployeeByID(ctx, id)
}

// CreateEmployee creates an employee with an optional manager.
// Self-management and manager cycles are not checked: a new employee cannot
// pick itself, and no operation here reassigns managers.
func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error) {
	if !req.RoleID.Valid() {
		return nil, ErrInvalidRoleID
	}
	if id, ok := req.Manager.ID(); ok && !id.Valid() {
		return nil, ErrInvalidManagerID
	}

	employee, err := s.repo.CreateEmployee(ctx, req.FirstName, req.LastName, req.RoleID, req.Manager)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// UpdateEmployeeRole changes the role of exactly one employee
func (s *service) UpdateEmployeeRole(ctx context.Context, req UpdateEmployeeRoleRequest) error {
	if !req.EmployeeID.Valid() {
		return ErrInvalidEmployeeID
	}
	if !req.RoleID.Valid() {
		return ErrInvalidRoleID
	}

	if err := s.repo.UpdateEmployeeRole(ctx, req.EmployeeID, req.RoleID); err != nil {
		return fmt.Errorf("failed to update employee role: %w", err)
	}
	return nil
}
