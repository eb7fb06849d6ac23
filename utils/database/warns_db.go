package database

import (
	"fmt"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
)

// AddWarn inserts a new warning and returns its ID.
func AddWarn(db *sqlx.DB, warn model.Warn) (int64, error) {
	query := `INSERT INTO warns (user_id, guild_id, moderator_id, reason, expires_at)
	          VALUES (:user_id, :guild_id, :moderator_id, :reason, :expires_at)`

	result, err := db.NamedExec(query, warn)
	if err != nil {
		return 0, fmt.Errorf("failed to insert warn: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// CountActiveWarns counts warnings for a user in a guild that have not expired.
func CountActiveWarns(db *sqlx.DB, userID, guildID string, now int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM warns WHERE user_id = ? AND guild_id = ? AND expires_at > ?`
	err := db.Get(&count, query, userID, guildID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count active warns for user %s in guild %s: %w", userID, guildID, err)
	}
	return count, nil
}

// GetActiveWarns retrieves unexpired warnings for a user in a guild in insertion order.
func GetActiveWarns(db *sqlx.DB, userID, guildID string, now int64) ([]model.Warn, error) {
	var warns []model.Warn
	query := `SELECT * FROM warns WHERE user_id = ? AND guild_id = ? AND expires_at > ? ORDER BY id`
	err := db.Select(&warns, query, userID, guildID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get active warns for user %s in guild %s: %w", userID, guildID, err)
	}
	return warns, nil
}

// DeleteExpiredWarns removes warnings whose expiry has passed and returns the number deleted.
func DeleteExpiredWarns(db *sqlx.DB, now int64) (int64, error) {
	result, err := db.Exec(`DELETE FROM warns WHERE expires_at <= ?`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired warns: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected for warn sweep: %w", err)
	}
	return deleted, nil
}

// CountActiveWarnsGlobal counts unexpired warnings across all guilds.
func CountActiveWarnsGlobal(db *sqlx.DB, now int64) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM warns WHERE expires_at > ?`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count active warns: %w", err)
	}
	return count, nil
}
