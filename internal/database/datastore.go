package database

// DataStore defines the unified interface for all data operations needed by
// the menu. It is composed of the per-entity interfaces; services depend on
// the smaller ones.
type DataStore interface {
	DepartmentRepository
	RoleRepository
	EmployeeRepository
}

var _ DataStore = (*Repository)(nil)
