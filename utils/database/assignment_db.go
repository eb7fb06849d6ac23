package database

import (
	"fmt"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
)

// AddAssignmentLog appends an assignment audit record.
func AddAssignmentLog(db *sqlx.DB, entry model.AssignmentLog) (int64, error) {
	query := `INSERT INTO assignment_logs (assigner_id, assigned_id, role_type, reason, timestamp)
	          VALUES (:assigner_id, :assigned_id, :role_type, :reason, :timestamp)`

	result, err := db.NamedExec(query, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to insert assignment log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// GetRecentAssignments retrieves the latest assignment records, newest first.
func GetRecentAssignments(db *sqlx.DB, limit int) ([]model.AssignmentLog, error) {
	var entries []model.AssignmentLog
	query := `SELECT * FROM assignment_logs ORDER BY timestamp DESC, id DESC LIMIT ?`
	err := db.Select(&entries, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent assignments: %w", err)
	}
	return entries, nil
}

// CountAssignments returns the total number of assignment records.
func CountAssignments(db *sqlx.DB) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM assignment_logs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
