package department

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// Service defines all department-related business operations
type Service interface {
	// Read operations
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id types.DepartmentID) (*models.Department, error)

	// Write operations
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*models.Department, error)
}

// CreateDepartmentRequest encapsulates data for creating a department
type CreateDepartmentRequest struct {
	Name string
}

// repository defines the data access methods needed by the department service
type repository interface {
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id types.DepartmentID) (*models.Department, error)
}

type service struct {
	repo repository
}

// NewService creates a new department service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllDepartments retrieves all departments
func (s *service) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.repo.GetAllDepartments(ctx)
}

// GetDepartmentByID retrieves a specific department
func (s *service) GetDepartmentByID(ctx context.Context, id types.DepartmentID) (*models.Department, error) {
	if !id.Valid() {
		return nil, ErrInvalidDepartmentID
	}
	return s.repo.GetDepartmentByID(ctx, id)
}

// CreateDepartment stores the name exactly as entered
func (s *service) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*models.Department, error) {
	department, err := s.repo.CreateDepartment(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return department, nil
}
