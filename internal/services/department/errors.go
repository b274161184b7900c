package department

import "errors"

// Domain errors for department service
var (
	ErrInvalidDepartmentID = errors.New("invalid department ID")
)
