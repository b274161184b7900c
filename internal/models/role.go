package models

import (
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/roster/internal/types"
)

// Role is a job title with a salary, owned by a department
type Role struct {
	ID           types.RoleID
	Title        string
	Salary       decimal.Decimal
	DepartmentID types.DepartmentID
}

// RoleListing is a role joined with its department name, as shown by
// "View all roles"
type RoleListing struct {
	ID         types.RoleID
	Title      string
	Department string
	Salary     decimal.Decimal
}
