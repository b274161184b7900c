package models

import "github.com/thenoetrevino/roster/internal/types"

// Department is the top-level organizational unit. Roles belong to exactly
// one department.
type Department struct {
	ID   types.DepartmentID
	Name string
}
