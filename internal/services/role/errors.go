package role

import "errors"

// Domain errors for role service
var (
	ErrInvalidRoleID       = errors.New("invalid role ID")
	ErrInvalidDepartmentID = errors.New("invalid department ID")
)
