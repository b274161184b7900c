package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// RoleRepo handles all role-related database operations.
type RoleRepo struct {
	db *DB
}

// Create inserts a role. Salary is passed to the store as entered; the
// numeric column decides whether it is acceptable.
func (r *RoleRepo) Create(ctx context.Context, title, salary string, departmentID types.DepartmentID) (*models.Role, error) {
	role := &models.Role{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO roles (title, salary, department_id) VALUES ($1, $2, $3)
		RETURNING id, title, salary, department_id`,
		title, salary, departmentID.ToInt(),
	).Scan(&role.ID, &role.Title, &role.Salary, &role.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert role '%s': %w", title, err)
	}
	return role, nil
}

// GetAll retrieves all roles ordered by ID
func (r *RoleRepo) GetAll(ctx context.Context) ([]*models.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, salary, department_id FROM roles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query all roles: %w", err)
	}
	defer closeRows(rows)

	roles := make([]*models.Role, 0, 10)
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Title, &role.Salary, &role.DepartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}
	return roles, nil
}

// GetListings retrieves every role with its department name
func (r *RoleRepo) GetListings(ctx context.Context) ([]*models.RoleListing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT roles.id, roles.title, departments.name AS department, roles.salary
		FROM roles
		JOIN departments ON roles.department_id = departments.id
		ORDER BY roles.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query role listings: %w", err)
	}
	defer closeRows(rows)

	listings := make([]*models.RoleListing, 0, 10)
	for rows.Next() {
		listing := &models.RoleListing{}
		if err := rows.Scan(&listing.ID, &listing.Title, &listing.Department, &listing.Salary); err != nil {
			return nil, fmt.Errorf("failed to scan role listing row: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role listing rows: %w", err)
	}
	return listings, nil
}

// GetByID retrieves a role by its ID
func (r *RoleRepo) GetByID(ctx context.Context, id types.RoleID) (*models.Role, error) {
	role := &models.Role{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, salary, department_id FROM roles WHERE id = $1`,
		id.ToInt(),
	).Scan(&role.ID, &role.Title, &role.Salary, &role.DepartmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("role %d: %w", id, models.ErrRoleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	return role, nil
}
