package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/testutil"
	"github.com/thenoetrevino/roster/internal/types"
)

type fixture struct {
	svc      Service
	repo     *database.Repository
	engineer *models.Role
	lead     *models.Role
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { _ = db.Close() })
	repo := database.NewRepository(db)

	dept := testutil.CreateTestDepartment(t, repo, "Engineering")
	return &fixture{
		svc:      NewService(repo),
		repo:     repo,
		engineer: testutil.CreateTestRole(t, repo, "Engineer", "75000", dept.ID),
		lead:     testutil.CreateTestRole(t, repo, "Lead", "120000", dept.ID),
	}
}

func TestCreateEmployee_NoManager(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	emp, err := f.svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		RoleID:    f.engineer.ID,
		Manager:   models.NoManager(),
	})
	require.NoError(t, err)
	assert.True(t, emp.ID.Valid())
	assert.True(t, emp.Manager.IsNone())
	assert.Equal(t, "Ada Lovelace", emp.FullName())
}

func TestCreateEmployee_WithManager(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	grace := testutil.CreateTestEmployee(t, f.repo, "Grace", "Hopper", f.lead.ID, models.NoManager())

	emp, err := f.svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		RoleID:    f.engineer.ID,
		Manager:   models.ManagedBy(grace.ID),
	})
	require.NoError(t, err)

	id, ok := emp.Manager.ID()
	require.True(t, ok)
	assert.Equal(t, grace.ID, id)

	listings, err := f.svc.GetEmployeeListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.NotNil(t, listings[1].Manager)
	assert.Equal(t, "Grace Hopper", *listings[1].Manager)
}

func TestCreateEmployee_Errors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tests := []struct {
		name    string
		req     CreateEmployeeRequest
		wantErr error
	}{
		{
			name:    "invalid role id",
			req:     CreateEmployeeRequest{FirstName: "Ada", LastName: "Lovelace", RoleID: 0},
			wantErr: ErrInvalidRoleID,
		},
		{
			name: "invalid manager id",
			req: CreateEmployeeRequest{
				FirstName: "Ada", LastName: "Lovelace", RoleID: f.engineer.ID,
				Manager: models.ManagedBy(types.EmployeeID(0)),
			},
			wantErr: ErrInvalidManagerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateEmployee(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("manager does not exist", func(t *testing.T) {
		_, err := f.svc.CreateEmployee(ctx, CreateEmployeeRequest{
			FirstName: "Ada", LastName: "Lovelace", RoleID: f.engineer.ID,
			Manager: models.ManagedBy(types.EmployeeID(42)),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create employee")
	})

	employees, err := f.svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestUpdateEmployeeRole(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	ada := testutil.CreateTestEmployee(t, f.repo, "Ada", "Lovelace", f.engineer.ID, models.NoManager())
	alan := testutil.CreateTestEmployee(t, f.repo, "Alan", "Turing", f.engineer.ID, models.NoManager())

	require.NoError(t, f.svc.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: ada.ID, RoleID: f.lead.ID}))

	got, err := f.svc.GetEmployeeByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, f.lead.ID, got.RoleID)

	other, err := f.svc.GetEmployeeByID(ctx, alan.ID)
	require.NoError(t, err)
	assert.Equal(t, f.engineer.ID, other.RoleID)
}

func TestUpdateEmployeeRole_Errors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	ada := testutil.CreateTestEmployee(t, f.repo, "Ada", "Lovelace", f.engineer.ID, models.NoManager())

	err := f.svc.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: 0, RoleID: f.lead.ID})
	assert.ErrorIs(t, err, ErrInvalidEmployeeID)

	err = f.svc.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: ada.ID, RoleID: 0})
	assert.ErrorIs(t, err, ErrInvalidRoleID)

	err = f.svc.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: ada.ID + 100, RoleID: f.lead.ID})
	assert.ErrorIs(t, err, models.ErrEmployeeNotFound)

	err = f.svc.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: ada.ID, RoleID: f.lead.ID + 100})
	assert.Error(t, err, "unknown role violates the foreign key")
}

func TestGetEmployeeByID_Invalid(t *testing.T) {
	f := setup(t)

	_, err := f.svc.GetEmployeeByID(context.Background(), types.EmployeeID(0))
	assert.ErrorIs(t, err, ErrInvalidEmployeeID)
}
