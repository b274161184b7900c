package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// EmployeeRepo handles all employee-related database operations.
type EmployeeRepo struct {
	db *DB
}

// Create inserts an employee. An absent manager is stored as NULL.
func (r *EmployeeRepo) Create(ctx context.Context, firstName, lastName string, roleID types.RoleID, manager models.Manager) (*models.Employee, error) {
	managerArg, err := manager.Value()
	if err != nil {
		return nil, fmt.Errorf("failed to bind manager: %w", err)
	}

	employee := &models.Employee{}
	var managerID sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, role_id, manager_id`,
		firstName, lastName, roleID.ToInt(), managerArg,
	).Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.RoleID, &managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert employee '%s %s': %w", firstName, lastName, err)
	}
	employee.Manager = managerFromNull(managerID)
	return employee, nil
}

// GetAll retrieves all employees ordered by ID
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, role_id, manager_id FROM employees ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query all employees: %w", err)
	}
	defer closeRows(rows)

	employees := make([]*models.Employee, 0, 10)
	for rows.Next() {
		employee := &models.Employee{}
		var managerID sql.NullInt64
		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.RoleID, &managerID); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employee.Manager = managerFromNull(managerID)
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

// GetListings retrieves every employee with role, department and manager
// name. The manager join is a LEFT self-join so employees without a manager
// are kept, with a NULL manager column.
func (r *EmployeeRepo) GetListings(ctx context.Context) ([]*models.EmployeeListing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT employees.id, employees.first_name, employees.last_name, roles.title AS job_title,
			departments.name AS department, roles.salary,
			CASE WHEN manager.id IS NULL THEN NULL
				ELSE manager.first_name || ' ' || manager.last_name END AS manager
		FROM employees
		JOIN roles ON employees.role_id = roles.id
		JOIN departments ON roles.department_id = departments.id
		LEFT JOIN employees AS manager ON employees.manager_id = manager.id
		ORDER BY employees.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee listings: %w", err)
	}
	defer closeRows(rows)

	listings := make([]*models.EmployeeListing, 0, 10)
	for rows.Next() {
		listing := &models.EmployeeListing{}
		var manager sql.NullString
		if err := rows.Scan(
			&listing.ID, &listing.FirstName, &listing.LastName, &listing.JobTitle,
			&listing.Department, &listing.Salary, &manager,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee listing row: %w", err)
		}
		listing.Manager = nullStringToPtr(manager)
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee listing rows: %w", err)
	}
	return listings, nil
}

// GetByID retrieves an employee by its ID
func (r *EmployeeRepo) GetByID(ctx context.Context, id types.EmployeeID) (*models.Employee, error) {
	employee := &models.Employee{}
	var managerID sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, role_id, manager_id FROM employees WHERE id = $1`,
		id.ToInt(),
	).Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.RoleID, &managerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %d: %w", id, models.ErrEmployeeNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	employee.Manager = managerFromNull(managerID)
	return employee, nil
}

// UpdateRole points one employee at a different role
func (r *EmployeeRepo) UpdateRole(ctx context.Context, id types.EmployeeID, roleID types.RoleID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees SET role_id = $1 WHERE id = $2`,
		roleID.ToInt(), id.ToInt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update role of employee %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for employee %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %d: %w", id, models.ErrEmployeeNotFound)
	}
	return nil
}
