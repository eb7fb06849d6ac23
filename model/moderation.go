package model

import "database/sql"

// Warn represents a single warning issued to a user in one guild.
// The database table is named 'warns'.
type Warn struct {
	ID          int64  `db:"id"` // Primary Key, Auto-increment
	UserID      string `db:"user_id"`
	GuildID     string `db:"guild_id"`
	ModeratorID string `db:"moderator_id"`
	Reason      string `db:"reason"`
	ExpiresAt   int64  `db:"expires_at"` // Unix seconds; warning is active while now < ExpiresAt
}

// GlobalBan represents a project-wide ban backed by one canonical record.
// At most one row exists per user; presence of the row means "banned".
type GlobalBan struct {
	UserID    string        `db:"user_id"`
	Reason    string        `db:"reason"`
	BannedBy  string        `db:"banned_by"`
	ExpiresAt sql.NullInt64 `db:"expires_at"` // NULL = permanent
}
