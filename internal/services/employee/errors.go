package employee

import "errors"

// Domain errors for employee service
var (
	ErrInvalidEmployeeID = errors.New("invalid employee ID")
	ErrInvalidRoleID     = errors.New("invalid role ID")
	ErrInvalidManagerID  = errors.New("invalid manager ID")
)
