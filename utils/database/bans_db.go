package database

import (
	"database/sql"
	"fmt"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
)

// UpsertGlobalBan inserts or replaces the ban record for a user.
// Last writer wins; prior reason and expiry are discarded.
func UpsertGlobalBan(db *sqlx.DB, ban model.GlobalBan) error {
	query := `INSERT OR REPLACE INTO global_bans (user_id, reason, banned_by, expires_at)
	          VALUES (:user_id, :reason, :banned_by, :expires_at)`
	if _, err := db.NamedExec(query, ban); err != nil {
		return fmt.Errorf("failed to upsert global ban for user %s: %w", ban.UserID, err)
	}
	return nil
}

// DeleteGlobalBan removes the ban record for a user.
// Returns false if no record existed.
func DeleteGlobalBan(db *sqlx.DB, userID string) (bool, error) {
	result, err := db.Exec(`DELETE FROM global_bans WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete global ban for user %s: %w", userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected for unban of user %s: %w", userID, err)
	}
	return rowsAffected > 0, nil
}

// GetGlobalBan retrieves the ban record for a user, or nil when not banned.
func GetGlobalBan(db *sqlx.DB, userID string) (*model.GlobalBan, error) {
	var ban model.GlobalBan
	err := db.Get(&ban, `SELECT * FROM global_bans WHERE user_id = ?`, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get global ban for user %s: %w", userID, err)
	}
	return &ban, nil
}

// GetExpiredGlobalBans retrieves temporary bans whose expiry has passed.
// Permanent bans (NULL expiry) are never returned.
func GetExpiredGlobalBans(db *sqlx.DB, now int64) ([]model.GlobalBan, error) {
	var bans []model.GlobalBan
	query := `SELECT * FROM global_bans WHERE expires_at IS NOT NULL AND expires_at <= ?`
	err := db.Select(&bans, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get expired global bans: %w", err)
	}
	return bans, nil
}

// CountGlobalBans returns the number of ban records.
func CountGlobalBans(db *sqlx.DB) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM global_bans`)
	if err != nil {
		return 0, fmt.Errorf("failed to count global bans: %w", err)
	}
	return count, nil
}
