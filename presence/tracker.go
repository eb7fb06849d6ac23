// Package presence accumulates per-(user, guild) voice-channel time from
// discrete connect/disconnect events.
package presence

import (
	"fmt"
	"time"

	"greenfield-bot/utils/database"

	"github.com/jmoiron/sqlx"
)

// Tracker folds voice session durations into the online_time table.
type Tracker struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewTracker creates a tracker over the project database.
func NewTracker(db *sqlx.DB) *Tracker {
	return &Tracker{db: db, now: time.Now}
}

// OnConnect marks the user as connected, preserving any accumulated total.
// A second connect without an intervening disconnect overwrites last_join,
// dropping the earlier session's partial time; that matches how the bot
// has always counted and is accepted behavior.
func (t *Tracker) OnConnect(userID, guildID string) error {
	if err := database.SetVoiceJoin(t.db, userID, guildID, t.now().Unix()); err != nil {
		return fmt.Errorf("failed to track voice connect: %w", err)
	}
	return nil
}

// OnDisconnect folds the elapsed session time into the running total and
// clears last_join. A disconnect without a matching connect is ignored.
func (t *Tracker) OnDisconnect(userID, guildID string) error {
	row, err := database.GetOnlineTime(t.db, userID, guildID)
	if err != nil {
		return fmt.Errorf("failed to track voice disconnect: %w", err)
	}
	if row == nil || !row.LastJoin.Valid {
		return nil
	}

	elapsed := t.now().Unix() - row.LastJoin.Int64
	if err := database.FoldVoiceLeave(t.db, userID, guildID, elapsed); err != nil {
		return fmt.Errorf("failed to track voice disconnect: %w", err)
	}
	return nil
}

// TotalSeconds returns the accumulated voice time for (userID, guildID).
func (t *Tracker) TotalSeconds(userID, guildID string) (int64, error) {
	row, err := database.GetOnlineTime(t.db, userID, guildID)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return row.TotalSeconds, nil
}
