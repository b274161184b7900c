// Package menu runs the main menu: show the actions, run the one picked,
// report its outcome, and repeat until the user exits
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/department"
	"github.com/thenoetrevino/roster/internal/cli/employee"
	"github.com/thenoetrevino/roster/internal/cli/role"
	"github.com/thenoetrevino/roster/internal/prompt"
)

// Title is the question the main menu asks
const Title = "What would you like to do?"

// Action is one main menu entry
type Action int

const (
	ActionViewDepartments Action = iota
	ActionViewRoles
	ActionViewEmployees
	ActionAddDepartment
	ActionAddRole
	ActionAddEmployee
	ActionUpdateEmployeeRole
	ActionExit
)

// Actions lists the menu entries in display order
var Actions = []Action{
	ActionViewDepartments,
	ActionViewRoles,
	ActionViewEmployees,
	ActionAddDepartment,
	ActionAddRole,
	ActionAddEmployee,
	ActionUpdateEmployeeRole,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionViewDepartments:
		return "View all departments"
	case ActionViewRoles:
		return "View all roles"
	case ActionViewEmployees:
		return "View all employees"
	case ActionAddDepartment:
		return "Add a department"
	case ActionAddRole:
		return "Add a role"
	case ActionAddEmployee:
		return "Add an employee"
	case ActionUpdateEmployeeRole:
		return "Update an employee role"
	case ActionExit:
		return "Exit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Operation is what a non-exit entry runs
type Operation func(ctx context.Context, c *cli.CLI) error

// DefaultOperations maps each entry to its data operation
func DefaultOperations() map[Action]Operation {
	return map[Action]Operation{
		ActionViewDepartments:    department.List,
		ActionViewRoles:          role.List,
		ActionViewEmployees:      employee.List,
		ActionAddDepartment:      department.Create,
		ActionAddRole:            role.Create,
		ActionAddEmployee:        employee.Create,
		ActionUpdateEmployeeRole: employee.UpdateRole,
	}
}

// State of the loop
type State int

const (
	StatePrompting State = iota
	StateTerminated
)

// Menu is the loop state. It is driven by Run, or one Step at a time.
type Menu struct {
	cli   *cli.CLI
	ops   map[Action]Operation
	state State
}

// New creates a menu in the Prompting state
func New(c *cli.CLI, ops map[Action]Operation) *Menu {
	if ops == nil {
		ops = DefaultOperations()
	}
	return &Menu{cli: c, ops: ops, state: StatePrompting}
}

// State reports where the loop is
func (m *Menu) State() State {
	return m.state
}

// Run loops until the user exits, then closes the store connection. The
// returned error is non-nil only when the menu itself could not be shown or
// the connection failed to close.
func Run(ctx context.Context, c *cli.CLI) error {
	return New(c, nil).Run(ctx)
}

// Run implements the package-level Run for a configured menu
func (m *Menu) Run(ctx context.Context) error {
	m.logger().Info("menu started")
	for m.state == StatePrompting {
		if err := m.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step shows the menu once and runs the chosen entry. Operation failures are
// reported and leave the menu in Prompting.
func (m *Menu) Step(ctx context.Context) error {
	if m.state == StateTerminated {
		return nil
	}

	action, err := m.choose(ctx)
	switch {
	case isEndOfInput(err):
		m.logger().Info("menu closed by user", "reason", err)
		return m.exit()
	case err != nil:
		m.logger().Error("menu prompt failed", "error", err)
		m.cli.Out.Failure(err)
		if exitErr := m.exit(); exitErr != nil {
			return errors.Join(err, exitErr)
		}
		return err
	}

	if action == ActionExit {
		return m.exit()
	}

	op, ok := m.ops[action]
	if !ok {
		m.cli.Out.Failure(fmt.Errorf("no operation for %q", action))
		return nil
	}

	m.logger().Info("operation started", "action", action.String())
	if err := op(ctx, m.cli); err != nil {
		m.logger().Error("operation failed", "action", action.String(), "error", err)
		m.cli.Out.Failure(err)
		return nil
	}
	m.logger().Info("operation finished", "action", action.String())
	return nil
}

func (m *Menu) logger() *slog.Logger {
	return m.cli.App.Logger()
}

func (m *Menu) choose(ctx context.Context) (Action, error) {
	choices := make([]prompt.Choice[Action], len(Actions))
	for i, a := range Actions {
		choices[i] = prompt.NewChoice(a.String(), a)
	}
	return prompt.SelectOne(ctx, m.cli.Prompt, Title, choices)
}

func (m *Menu) exit() error {
	m.state = StateTerminated
	m.cli.Out.Info("👋 Exiting application...")
	m.logger().Info("exiting")

	if err := m.cli.Close(); err != nil {
		m.logger().Error("error closing database", "error", err)
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// isEndOfInput reports whether the user left the main menu without picking
// Exit: ctrl+c, a closed stdin or a cancelled context
func isEndOfInput(err error) bool {
	return errors.Is(err, prompt.ErrAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}
