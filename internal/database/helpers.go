package database

import (
	"database/sql"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/types"
)

// managerFromNull converts a nullable manager_id column to models.Manager
func managerFromNull(nv sql.NullInt64) models.Manager {
	if !nv.Valid {
		return models.NoManager()
	}
	return models.ManagedBy(types.EmployeeID(nv.Int64))
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}
