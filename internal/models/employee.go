package models

import (
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/roster/internal/types"
)

// Employee holds a role and, optionally, a manager who is another employee
type Employee struct {
	ID        types.EmployeeID
	FirstName string
	LastName  string
	RoleID    types.RoleID
	Manager   Manager
}

// FullName joins first and last name the way every choice list and status
// line displays an employee
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeListing is an employee joined with role, department and manager
// name, as shown by "View all employees". Manager is nil when the employee
// has no manager.
type EmployeeListing struct {
	ID         types.EmployeeID
	FirstName  string
	LastName   string
	JobTitle   string
	Department string
	Salary     decimal.Decimal
	Manager    *string
}
