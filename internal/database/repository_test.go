package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

func TestDepartmentRepo_CreateAndList(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created := createTestDepartment(t, repo, "Engineering")
	assert.True(t, created.ID.Valid(), "store should assign an ID")
	assert.Equal(t, "Engineering", created.Name)

	departments, err := repo.GetAllDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, created.ID, departments[0].ID)
	assert.Equal(t, "Engineering", departments[0].Name)

	second := createTestDepartment(t, repo, "Sales")
	assert.NotEqual(t, created.ID, second.ID)

	departments, err = repo.GetAllDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Sales", departments[1].Name)
}

func TestDepartmentRepo_GetByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	created := createTestDepartment(t, repo, "Legal")

	found, err := repo.GetDepartmentByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Legal", found.Name)

	_, err = repo.GetDepartmentByID(context.Background(), created.ID+100)
	assert.ErrorIs(t, err, models.ErrDepartmentNotFound)
}

func TestRoleRepo_ListingJoinsDepartmentName(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	engineering := createTestDepartment(t, repo, "Engineering")
	sales := createTestDepartment(t, repo, "Sales")

	engineer := createTestRole(t, repo, "Engineer", "75000", engineering.ID)
	createTestRole(t, repo, "Account Manager", "62000.50", sales.ID)

	assert.True(t, engineer.Salary.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, engineering.ID, engineer.DepartmentID)

	listings, err := repo.GetRoleListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Engineer", listings[0].Title)
	assert.Equal(t, "Engineering", listings[0].Department)
	assert.Equal(t, "75000", listings[0].Salary.String())

	assert.Equal(t, "Account Manager", listings[1].Title)
	assert.Equal(t, "Sales", listings[1].Department)
	assert.Equal(t, "62000.5", listings[1].Salary.String())
}

func TestRoleRepo_RejectsNonNumericSalary(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")

	_, err := repo.CreateRole(context.Background(), "Engineer", "lots", department.ID)
	assert.Error(t, err)

	roles, err := repo.GetAllRoles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestRoleRepo_RejectsMissingDepartment(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.CreateRole(context.Background(), "Engineer", "1000", types.DepartmentID(42))
	assert.Error(t, err)
}

func TestRoleRepo_GetByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")
	role := createTestRole(t, repo, "Engineer", "1000", department.ID)

	found, err := repo.GetRoleByID(context.Background(), role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", found.Title)

	_, err = repo.GetRoleByID(context.Background(), role.ID+1)
	assert.ErrorIs(t, err, models.ErrRoleNotFound)
}

func TestEmployeeRepo_ManagerColumn(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")
	role := createTestRole(t, repo, "Engineer", "75000", department.ID)

	ada := createTestEmployee(t, repo, "Ada", "Lovelace", role.ID, models.NoManager())
	assert.True(t, ada.Manager.IsNone())

	grace := createTestEmployee(t, repo, "Grace", "Hopper", role.ID, models.ManagedBy(ada.ID))
	managerID, ok := grace.Manager.ID()
	require.True(t, ok)
	assert.Equal(t, ada.ID, managerID)

	listings, err := repo.GetEmployeeListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Ada", listings[0].FirstName)
	assert.Nil(t, listings[0].Manager, "employee without manager should have no manager name")

	assert.Equal(t, "Grace", listings[1].FirstName)
	require.NotNil(t, listings[1].Manager)
	assert.Equal(t, "Ada Lovelace", *listings[1].Manager)
	assert.Equal(t, "Engineer", listings[1].JobTitle)
	assert.Equal(t, "Engineering", listings[1].Department)
	assert.True(t, listings[1].Salary.Equal(decimal.NewFromInt(75000)))
}

func TestEmployeeRepo_GetAllKeepsManager(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")
	role := createTestRole(t, repo, "Engineer", "75000", department.ID)
	boss := createTestEmployee(t, repo, "Boss", "One", role.ID, models.NoManager())
	createTestEmployee(t, repo, "Report", "Two", role.ID, models.ManagedBy(boss.ID))

	employees, err := repo.GetAllEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.True(t, employees[0].Manager.IsNone())
	assert.Equal(t, models.ManagedBy(boss.ID), employees[1].Manager)
}

func TestEmployeeRepo_RejectsMissingManager(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")
	role := createTestRole(t, repo, "Engineer", "75000", department.ID)

	_, err := repo.CreateEmployee(context.Background(), "Nobody", "Here", role.ID, models.ManagedBy(999))
	assert.Error(t, err)
}

func TestEmployeeRepo_UpdateRoleTouchesOnlyTarget(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	department := createTestDepartment(t, repo, "Engineering")
	engineer := createTestRole(t, repo, "Engineer", "75000", department.ID)
	lead := createTestRole(t, repo, "Lead", "95000", department.ID)

	ada := createTestEmployee(t, repo, "Ada", "Lovelace", engineer.ID, models.NoManager())
	alan := createTestEmployee(t, repo, "Alan", "Turing", engineer.ID, models.NoManager())

	require.NoError(t, repo.UpdateEmployeeRole(ctx, ada.ID, lead.ID))

	updated, err := repo.GetEmployeeByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, updated.RoleID)

	untouched, err := repo.GetEmployeeByID(ctx, alan.ID)
	require.NoError(t, err)
	assert.Equal(t, engineer.ID, untouched.RoleID)
}

func TestEmployeeRepo_UpdateRoleMissingEmployee(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	department := createTestDepartment(t, repo, "Engineering")
	role := createTestRole(t, repo, "Engineer", "75000", department.ID)

	err := repo.UpdateEmployeeRole(context.Background(), types.EmployeeID(77), role.ID)
	assert.ErrorIs(t, err, models.ErrEmployeeNotFound)
}

func TestEmployeeRepo_GetByIDMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetEmployeeByID(context.Background(), types.EmployeeID(1))
	assert.ErrorIs(t, err, models.ErrEmployeeNotFound)
}

// ============================================================================
// FAILURE PROPAGATION (sqlmock, Postgres dialect)
// ============================================================================

func TestRepository_QueryFailurePropagates(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewRepository(Wrap(conn, DialectPostgres))
	defer func() { _ = conn.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM departments ORDER BY id")).
		WillReturnError(errors.New("connection reset by peer"))

	_, err = repo.GetAllDepartments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query all departments")
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PostgresPlaceholdersPassThrough(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewRepository(Wrap(conn, DialectPostgres))
	defer func() { _ = conn.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET role_id = $1 WHERE id = $2")).
		WithArgs(3, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateEmployeeRole(context.Background(), types.EmployeeID(9), types.RoleID(3)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NullManagerBoundAsNil(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewRepository(Wrap(conn, DialectPostgres))
	defer func() { _ = conn.Close() }()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "role_id", "manager_id"}).
		AddRow(1, "Ada", "Lovelace", 2, nil)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs("Ada", "Lovelace", 2, nil).
		WillReturnRows(rows)

	employee, err := repo.CreateEmployee(context.Background(), "Ada", "Lovelace", types.RoleID(2), models.NoManager())
	require.NoError(t, err)
	assert.True(t, employee.Manager.IsNone())
	assert.NoError(t, mock.ExpectationsWereMet())
}
