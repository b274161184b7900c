package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// DepartmentRepo handles all department-related database operations.
type DepartmentRepo struct {
	db *DB
}

// Create inserts a department and returns it with its assigned ID
func (r *DepartmentRepo) Create(ctx context.Context, name string) (*models.Department, error) {
	department := &models.Department{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&department.ID, &department.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert department '%s': %w", name, err)
	}
	return department, nil
}

// GetAll retrieves all departments ordered by ID
func (r *DepartmentRepo) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all departments: %w", err)
	}
	defer closeRows(rows)

	departments := make([]*models.Department, 0, 10)
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

// GetByID retrieves a department by its ID
func (r *DepartmentRepo) GetByID(ctx context.Context, id types.DepartmentID) (*models.Department, error) {
	department := &models.Department{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM departments WHERE id = $1`,
		id.ToInt(),
	).Scan(&department.ID, &department.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("department %d: %w", id, models.ErrDepartmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department %d: %w", id, err)
	}
	return department, nil
}
