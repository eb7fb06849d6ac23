package model

import "database/sql"

// OnlineTime accumulates voice-channel time per (user, guild).
// LastJoin is non-NULL only while the user is connected.
type OnlineTime struct {
	UserID       string        `db:"user_id"`
	GuildID      string        `db:"guild_id"`
	LastJoin     sql.NullInt64 `db:"last_join"`
	TotalSeconds int64         `db:"total_seconds"`
}
