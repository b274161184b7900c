// Package role holds the menu operations on roles
package role

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/department"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/prompt"
	roleservice "github.com/thenoetrevino/roster/internal/services/role"
)

const selectDepartmentTitle = "Select department:"

// List prints every role with the name of its department
func List(ctx context.Context, c *cli.CLI) error {
	listings, err := c.App.RoleService.GetRoleListings(ctx)
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		c.Out.Info("No roles found")
		return nil
	}

	rows := make([][]string, len(listings))
	for i, r := range listings {
		rows[i] = []string{strconv.Itoa(r.ID.ToInt()), r.Title, r.Department, r.Salary.String()}
	}
	c.Out.Table([]string{"id", "title", "department", "salary"}, rows)

	slog.Debug("listed roles", "count", len(listings))
	return nil
}

// Create reads the departments, asks for title, salary and department, then
// inserts the role. Salary is passed through as typed. Without any
// department nothing is asked.
func Create(ctx context.Context, c *cli.CLI) error {
	departments, err := c.App.DepartmentService.GetAllDepartments(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		return prompt.NoChoices(selectDepartmentTitle)
	}

	title, err := c.Prompt.Input(ctx, "Enter role name:")
	if err != nil {
		return err
	}

	salary, err := c.Prompt.Input(ctx, "Enter salary:")
	if err != nil {
		return err
	}

	dept, err := prompt.SelectOne(ctx, c.Prompt, selectDepartmentTitle, department.Choices(departments))
	if err != nil {
		return err
	}

	role, err := c.App.RoleService.CreateRole(ctx, roleservice.CreateRoleRequest{
		Title:        title,
		Salary:       salary,
		DepartmentID: dept.ID,
	})
	if err != nil {
		return err
	}

	slog.Info("role created", "id", role.ID, "title", role.Title, "department_id", role.DepartmentID)
	c.Out.Success("Role \"%s\" added.", role.Title)
	return nil
}

// Choices builds the choice list used wherever a role is picked
func Choices(roles []*models.Role) []prompt.Choice[*models.Role] {
	choices := make([]prompt.Choice[*models.Role], len(roles))
	for i, r := range roles {
		choices[i] = prompt.NewChoice(r.Title, r)
	}
	return choices
}
