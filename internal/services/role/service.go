package role

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// Service defines all role-related business operations
type Service interface {
	// Read operations
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetRoleListings(ctx context.Context) ([]*models.RoleListing, error)
	GetRoleByID(ctx context.Context, id types.RoleID) (*models.Role, error)

	// Write operations
	CreateRole(ctx context.Context, req CreateRoleRequest) (*models.Role, error)
}

// CreateRoleRequest encapsulates data for creating a role. Salary is the raw
// text typed by the user.
type CreateRoleRequest struct {
	Title        string
	Salary       string
	DepartmentID types.DepartmentID
}

// repository defines the data access methods needed by the role service
type repository interface {
	CreateRole(ctx context.Context, title, salary string, departmentID types.DepartmentID) (*models.Role, error)
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetRoleListings(ctx context.Context) ([]*models.RoleListing, error)
	GetRoleByID(ctx context.Context, id types.RoleID) (*models.Role, error)
}

type service struct {
	repo repository
}

// NewService creates a new role service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllRoles retrieves all roles
func (s *service) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	return s.repo.GetAllRoles(ctx)
}

// GetRoleListings retrieves all roles joined with their department
func (s *service) GetRoleListings(ctx context.Context) ([]*models.RoleListing, error) {
	return s.repo.GetRoleListings(ctx)
}

// GetRoleByID retrieves a specific role
func (s *service) GetRoleByID(ctx context.Context, id types.RoleID) (*models.Role, error) {
	if !id.Valid() {
		return nil, ErrInvalidRoleID
	}
	return s.repo.GetRoleByID(ctx, id)
}

// CreateRole creates a role under an existing department. The department ID
// always comes from a choice list; the store enforces that it exists.
func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (*models.Role, error) {
	if !req.DepartmentID.Valid() {
		return nil, ErrInvalidDepartmentID
	}

	role, err := s.repo.CreateRole(ctx, req.Title, req.Salary, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}
