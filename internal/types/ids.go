package types

// ID types document which table an integer key belongs to. The store assigns
// every value; none of them are ever built from user input.

// DepartmentID identifies a row in the departments table
type DepartmentID int

// RoleID identifies a row in the roles table
type RoleID int

// EmployeeID identifies a row in the employees table
type EmployeeID int

// Valid reports whether the id could have been assigned by the store
func (id DepartmentID) Valid() bool {
	return id > 0
}

func (id RoleID) Valid() bool {
	return id > 0
}

func (id EmployeeID) Valid() bool {
	return id > 0
}

// ToInt converts type alias back to int for driver arguments
func (id DepartmentID) ToInt() int {
	return int(id)
}

func (id RoleID) ToInt() int {
	return int(id)
}

func (id EmployeeID) ToInt() int {
	return int(id)
}
