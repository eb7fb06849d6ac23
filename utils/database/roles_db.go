package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SetProjectRole binds a symbolic role key to a guild role ID.
func SetProjectRole(db *sqlx.DB, roleName, roleID string) error {
	query := `INSERT OR REPLACE INTO project_roles (role_name, role_id) VALUES (?, ?)`
	if _, err := db.Exec(query, roleName, roleID); err != nil {
		return fmt.Errorf("failed to set project role %s: %w", roleName, err)
	}
	return nil
}

// GetProjectRoleID resolves a role key to its role ID.
// Returns ok=false when the key is not configured.
func GetProjectRoleID(db *sqlx.DB, roleName string) (string, bool, error) {
	var roleID string
	err := db.Get(&roleID, `SELECT role_id FROM project_roles WHERE role_name = ?`, roleName)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get project role %s: %w", roleName, err)
	}
	return roleID, true, nil
}
