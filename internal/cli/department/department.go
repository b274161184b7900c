// Package department holds the menu operations on departments
package department

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/prompt"
	departmentservice "github.com/thenoetrevino/roster/internal/services/department"
)

// List prints every department
func List(ctx context.Context, c *cli.CLI) error {
	departments, err := c.App.DepartmentService.GetAllDepartments(ctx)
	if err != nil {
		return err
	}

	if len(departments) == 0 {
		c.Out.Info("No departments found")
		return nil
	}

	rows := make([][]string, len(departments))
	for i, d := range departments {
		rows[i] = []string{strconv.Itoa(d.ID.ToInt()), d.Name}
	}
	c.Out.Table([]string{"id", "name"}, rows)

	slog.Debug("listed departments", "count", len(departments))
	return nil
}

// Create asks for a name and inserts a department
func Create(ctx context.Context, c *cli.CLI) error {
	name, err := c.Prompt.Input(ctx, "Enter department name:")
	if err != nil {
		return err
	}

	dept, err := c.App.DepartmentService.CreateDepartment(ctx, departmentservice.CreateDepartmentRequest{
		Name: name,
	})
	if err != nil {
		return err
	}

	slog.Info("department created", "id", dept.ID, "name", dept.Name)
	c.Out.Success("Department \"%s\" added.", dept.Name)
	return nil
}

// Choices builds the choice list used wherever a department is picked
func Choices(departments []*models.Department) []prompt.Choice[*models.Department] {
	choices := make([]prompt.Choice[*models.Department], len(departments))
	for i, d := range departments {
		choices[i] = prompt.NewChoice(d.Name, d)
	}
	return choices
}
