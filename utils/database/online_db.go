package database

import (
	"database/sql"
	"fmt"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
)

// GetOnlineTime retrieves the accumulator row for (user, guild), or nil if absent.
func GetOnlineTime(db *sqlx.DB, userID, guildID string) (*model.OnlineTime, error) {
	var row model.OnlineTime
	err := db.Get(&row, `SELECT * FROM online_time WHERE user_id = ? AND guild_id = ?`, userID, guildID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get online time for user %s in guild %s: %w", userID, guildID, err)
	}
	return &row, nil
}

// SetVoiceJoin upserts the row, setting last_join and preserving any prior total.
func SetVoiceJoin(db *sqlx.DB, userID, guildID string, now int64) error {
	query := `INSERT OR REPLACE INTO online_time (user_id, guild_id, last_join, total_seconds)
	          VALUES (?, ?, ?, COALESCE((SELECT total_seconds FROM online_time WHERE user_id = ? AND guild_id = ?), 0))`
	if _, err := db.Exec(query, userID, guildID, now, userID, guildID); err != nil {
		return fmt.Errorf("failed to record voice join for user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}

// FoldVoiceLeave adds elapsed seconds into the total and clears last_join.
func FoldVoiceLeave(db *sqlx.DB, userID, guildID string, elapsed int64) error {
	query := `UPDATE online_time SET total_seconds = total_seconds + ?, last_join = NULL
	          WHERE user_id = ? AND guild_id = ?`
	if _, err := db.Exec(query, elapsed, userID, guildID); err != nil {
		return fmt.Errorf("failed to record voice leave for user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}

// TotalGuildSeconds sums accumulated voice time for a guild.
func TotalGuildSeconds(db *sqlx.DB, guildID string) (int64, error) {
	var total sql.NullInt64
	err := db.Get(&total, `SELECT SUM(total_seconds) FROM online_time WHERE guild_id = ?`, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum online time for guild %s: %w", guildID, err)
	}
	return total.Int64, nil
}
