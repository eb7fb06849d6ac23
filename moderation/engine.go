// Package moderation implements the project's moderation policy: warning
// accrual with expiry and escalation, and global ban propagation across
// every guild the bot serves.
package moderation

import (
	"fmt"
	"sync"
	"time"

	"greenfield-bot/model"
	"greenfield-bot/utils/database"

	"github.com/jmoiron/sqlx"
)

const (
	// DefaultWarnWindow is how long a warning stays active.
	DefaultWarnWindow = 7 * 24 * time.Hour
	// DefaultMaxWarns is the active-warning count that triggers a ban.
	DefaultMaxWarns = 3
)

// WarnOutcome is the authoritative decision returned by IssueWarning.
// ActiveCount includes the warning that was just issued.
type WarnOutcome struct {
	ActiveCount int
	Escalate    bool
}

// Engine converts moderation intents into persisted state and decisions.
// Callers must authorize the acting moderator before invoking it.
type Engine struct {
	db         *sqlx.DB
	warnWindow time.Duration
	maxWarns   int

	// Serializes the insert-then-count sequence; discordgo dispatches
	// events on separate goroutines, so two concurrent warns could
	// otherwise race the escalation threshold.
	mu sync.Mutex

	now func() time.Time
}

// NewEngine creates a policy engine over the project database.
// warnWindow and maxWarns fall back to the defaults when zero.
func NewEngine(db *sqlx.DB, warnWindow time.Duration, maxWarns int) *Engine {
	if warnWindow <= 0 {
		warnWindow = DefaultWarnWindow
	}
	if maxWarns <= 0 {
		maxWarns = DefaultMaxWarns
	}
	return &Engine{
		db:         db,
		warnWindow: warnWindow,
		maxWarns:   maxWarns,
		now:        time.Now,
	}
}

// IssueWarning records a warning against (userID, guildID) and decides
// whether it escalates to a ban. The warning just inserted counts toward
// the threshold, so the third warning itself escalates.
func (e *Engine) IssueWarning(userID, guildID, moderatorID, reason string) (WarnOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now().Unix()
	warn := model.Warn{
		UserID:      userID,
		GuildID:     guildID,
		ModeratorID: moderatorID,
		Reason:      reason,
		ExpiresAt:   now + int64(e.warnWindow/time.Second),
	}
	if _, err := database.AddWarn(e.db, warn); err != nil {
		return WarnOutcome{}, fmt.Errorf("failed to issue warning: %w", err)
	}

	count, err := database.CountActiveWarns(e.db, userID, guildID, now)
	if err != nil {
		return WarnOutcome{}, fmt.Errorf("failed to count active warnings: %w", err)
	}

	return WarnOutcome{ActiveCount: count, Escalate: count >= e.maxWarns}, nil
}

// MaxWarns returns the escalation threshold.
func (e *Engine) MaxWarns() int {
	return e.maxWarns
}

// ListActiveWarnings returns the unexpired warnings for (userID, guildID)
// in insertion order. Expired rows are excluded even before the sweeper
// physically removes them.
func (e *Engine) ListActiveWarnings(userID, guildID string) ([]model.Warn, error) {
	return database.GetActiveWarns(e.db, userID, guildID, e.now().Unix())
}

// SweepExpired deletes warnings whose expiry has passed. Running it twice
// in a row with no new warnings deletes nothing the second time.
func (e *Engine) SweepExpired() (int64, error) {
	return database.DeleteExpiredWarns(e.db, e.now().Unix())
}
