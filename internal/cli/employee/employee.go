// Package employee holds the menu operations on employees
package employee

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/role"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/prompt"
	employeeservice "github.com/thenoetrevino/roster/internal/services/employee"
)

// NoManagerLabel is the first entry of the manager choice list
const NoManagerLabel = "None"

const (
	selectRoleTitle     = "Select role:"
	selectEmployeeTitle = "Select employee to update:"
	selectNewRoleTitle  = "Select new role:"
)

var listHeaders = []string{"id", "first_name", "last_name", "job_title", "department", "salary", "manager"}

// List prints every employee with role, department, salary and manager.
// An employee without a manager gets an empty manager cell.
func List(ctx context.Context, c *cli.CLI) error {
	listings, err := c.App.EmployeeService.GetEmployeeListings(ctx)
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		c.Out.Info("No employees found")
		return nil
	}

	rows := make([][]string, len(listings))
	for i, e := range listings {
		manager := ""
		if e.Manager != nil {
			manager = *e.Manager
		}
		rows[i] = []string{
			strconv.Itoa(e.ID.ToInt()),
			e.FirstName,
			e.LastName,
			e.JobTitle,
			e.Department,
			e.Salary.String(),
			manager,
		}
	}
	c.Out.Table(listHeaders, rows)

	slog.Debug("listed employees", "count", len(listings))
	return nil
}

// Create reads roles and employees, asks for name, role and manager, then
// inserts the employee
func Create(ctx context.Context, c *cli.CLI) error {
	roles, err := c.App.RoleService.GetAllRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return prompt.NoChoices(selectRoleTitle)
	}

	employees, err := c.App.EmployeeService.GetAllEmployees(ctx)
	if err != nil {
		return err
	}

	firstName, err := c.Prompt.Input(ctx, "Enter first name:")
	if err != nil {
		return err
	}

	lastName, err := c.Prompt.Input(ctx, "Enter last name:")
	if err != nil {
		return err
	}

	r, err := prompt.SelectOne(ctx, c.Prompt, selectRoleTitle, role.Choices(roles))
	if err != nil {
		return err
	}

	manager, err := prompt.SelectOne(ctx, c.Prompt, "Select manager:", ManagerChoices(employees))
	if err != nil {
		return err
	}

	emp, err := c.App.EmployeeService.CreateEmployee(ctx, employeeservice.CreateEmployeeRequest{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    r.ID,
		Manager:   manager,
	})
	if err != nil {
		return err
	}

	managerID, hasManager := emp.Manager.ID()
	slog.Info("employee created",
		"id", emp.ID,
		"role_id", emp.RoleID,
		"has_manager", hasManager,
		"manager_id", managerID,
	)
	c.Out.Success("Employee \"%s\" added.", emp.FullName())
	return nil
}

// UpdateRole reads employees and roles, asks which employee moves to which
// role, then updates that one employee
func UpdateRole(ctx context.Context, c *cli.CLI) error {
	employees, err := c.App.EmployeeService.GetAllEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		return prompt.NoChoices(selectEmployeeTitle)
	}

	roles, err := c.App.RoleService.GetAllRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return prompt.NoChoices(selectNewRoleTitle)
	}

	emp, err := prompt.SelectOne(ctx, c.Prompt, selectEmployeeTitle, Choices(employees))
	if err != nil {
		return err
	}

	r, err := prompt.SelectOne(ctx, c.Prompt, selectNewRoleTitle, role.Choices(roles))
	if err != nil {
		return err
	}

	err = c.App.EmployeeService.UpdateEmployeeRole(ctx, employeeservice.UpdateEmployeeRoleRequest{
		EmployeeID: emp.ID,
		RoleID:     r.ID,
	})
	if err != nil {
		return err
	}

	slog.Info("employee role updated", "id", emp.ID, "from_role_id", emp.RoleID, "to_role_id", r.ID)
	c.Out.Success("Employee role updated.")
	return nil
}

// Choices builds the choice list used wherever an employee is picked
func Choices(employees []*models.Employee) []prompt.Choice[*models.Employee] {
	choices := make([]prompt.Choice[*models.Employee], len(employees))
	for i, e := range employees {
		choices[i] = prompt.NewChoice(e.FullName(), e)
	}
	return choices
}

// ManagerChoices lists every employee as a possible manager, after an
// explicit "None" entry
func ManagerChoices(employees []*models.Employee) []prompt.Choice[models.Manager] {
	choices := make([]prompt.Choice[models.Manager], 0, len(employees)+1)
	choices = append(choices, prompt.NewChoice(NoManagerLabel, models.NoManager()))
	for _, e := range employees {
		choices = append(choices, prompt.NewChoice(e.FullName(), models.ManagedBy(e.ID)))
	}
	return choices
}
