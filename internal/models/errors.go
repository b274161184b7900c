package models

import "errors"

// Domain-specific errors shared by the services
var (
	// ErrDepartmentNotFound indicates the referenced department does not exist
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrRoleNotFound indicates the referenced role does not exist
	ErrRoleNotFound = errors.New("role not found")

	// ErrEmployeeNotFound indicates the referenced employee does not exist
	ErrEmployeeNotFound = errors.New("employee not found")
)
