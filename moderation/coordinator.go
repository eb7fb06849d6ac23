package moderation

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"greenfield-bot/model"
	"greenfield-bot/utils/database"

	"github.com/jmoiron/sqlx"
)

// ErrNotBanned is returned by RemoveGlobalBan when no ban record exists.
var ErrNotBanned = errors.New("user is not globally banned")

// GuildSurface is the slice of the chat platform the coordinator needs:
// the guilds currently served and their native ban operations. Both calls
// may fail per guild (typically permission denied); the coordinator treats
// such failures as non-fatal.
type GuildSurface interface {
	GuildIDs() []string
	Ban(guildID, userID, reason string) error
	Unban(guildID, userID string) error
}

// Notifier receives best-effort audit notifications about global bans.
type Notifier interface {
	NotifyBan(userID, moderatorID, reason, expires string) error
}

// BanResult reports how a global ban was applied.
type BanResult struct {
	GuildsBanned int
	ExpiresAt    sql.NullInt64
	// DurationOK is false when the duration token did not parse and the
	// forgiving policy fell back to a permanent ban.
	DurationOK bool
}

// UnbanResult reports how a global unban was applied.
type UnbanResult struct {
	GuildsUnbanned int
}

// Coordinator applies ban decisions across every served guild. The single
// global_bans record is the authoritative state; per-guild enforcement is
// a best-effort projection of it and is never transactional.
type Coordinator struct {
	db     *sqlx.DB
	guilds GuildSurface
	notify Notifier // nil disables notifications

	// Serializes the upsert-then-iterate sequence.
	mu sync.Mutex

	now func() time.Time
}

// NewCoordinator creates a ban propagation coordinator.
func NewCoordinator(db *sqlx.DB, guilds GuildSurface, notify Notifier) *Coordinator {
	return &Coordinator{
		db:     db,
		guilds: guilds,
		notify: notify,
		now:    time.Now,
	}
}

// ApplyGlobalBan records a ban for userID and enforces it on every served
// guild. A guild that rejects the ban is skipped; the record stands
// regardless. The notification is fire-and-forget.
func (c *Coordinator) ApplyGlobalBan(userID, moderatorID, reason, durationToken string) (BanResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seconds, ok := ParseDuration(durationToken)
	expiresAt := BanExpiry(c.now(), seconds)

	ban := model.GlobalBan{
		UserID:    userID,
		Reason:    reason,
		BannedBy:  moderatorID,
		ExpiresAt: expiresAt,
	}
	if err := database.UpsertGlobalBan(c.db, ban); err != nil {
		return BanResult{}, fmt.Errorf("failed to record global ban: %w", err)
	}

	banned := 0
	for _, guildID := range c.guilds.GuildIDs() {
		if err := c.guilds.Ban(guildID, userID, "Global ban: "+reason); err != nil {
			log.Printf("Could not ban user %s in guild %s: %v", userID, guildID, err)
			continue
		}
		banned++
	}

	if c.notify != nil {
		if err := c.notify.NotifyBan(userID, moderatorID, reason, FormatExpiry(expiresAt)); err != nil {
			log.Printf("Failed to send ban notification for user %s: %v", userID, err)
		}
	}

	return BanResult{GuildsBanned: banned, ExpiresAt: expiresAt, DurationOK: ok}, nil
}

// RemoveGlobalBan deletes the ban record for userID and lifts the ban on
// every served guild. When no record exists it returns ErrNotBanned and
// makes no guild calls. Per-guild unban failures are skipped silently;
// the ban may have already lapsed or never applied there.
func (c *Coordinator) RemoveGlobalBan(userID string) (UnbanResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existed, err := database.DeleteGlobalBan(c.db, userID)
	if err != nil {
		return UnbanResult{}, fmt.Errorf("failed to remove global ban: %w", err)
	}
	if !existed {
		return UnbanResult{}, ErrNotBanned
	}

	return UnbanResult{GuildsUnbanned: c.liftEverywhere(userID)}, nil
}

// SweepExpiredBans deletes temporary ban records whose expiry has passed
// and lifts them from every served guild. Permanent bans are untouched.
func (c *Coordinator) SweepExpiredBans() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expired, err := database.GetExpiredGlobalBans(c.db, c.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired bans: %w", err)
	}

	swept := 0
	for _, ban := range expired {
		existed, err := database.DeleteGlobalBan(c.db, ban.UserID)
		if err != nil {
			log.Printf("Failed to delete expired ban for user %s: %v", ban.UserID, err)
			continue
		}
		if existed {
			c.liftEverywhere(ban.UserID)
			swept++
		}
	}
	return swept, nil
}

// IsBanned reports whether a canonical ban record exists for userID.
func (c *Coordinator) IsBanned(userID string) (bool, error) {
	ban, err := database.GetGlobalBan(c.db, userID)
	if err != nil {
		return false, err
	}
	return ban != nil, nil
}

func (c *Coordinator) liftEverywhere(userID string) int {
	unbanned := 0
	for _, guildID := range c.guilds.GuildIDs() {
		if err := c.guilds.Unban(guildID, userID); err != nil {
			continue
		}
		unbanned++
	}
	return unbanned
}
