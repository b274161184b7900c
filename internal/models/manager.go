package models

import (
	"database/sql/driver"

	"github.com/thenoetrevino/roster/internal/types"
)

// Manager is an optional reference to another employee. The zero value means
// "no manager" and binds as SQL NULL.
type Manager struct {
	id      types.EmployeeID
	present bool
}

// NoManager returns the absent variant
func NoManager() Manager {
	return Manager{}
}

// ManagedBy returns a reference to the given employee
func ManagedBy(id types.EmployeeID) Manager {
	return Manager{id: id, present: true}
}

// ID returns the referenced employee and whether a reference is set
func (m Manager) ID() (types.EmployeeID, bool) {
	return m.id, m.present
}

// IsNone reports whether no manager is set
func (m Manager) IsNone() bool {
	return !m.present
}

// Value implements driver.Valuer
func (m Manager) Value() (driver.Value, error) {
	if !m.present {
		return nil, nil
	}
	return int64(m.id), nil
}
