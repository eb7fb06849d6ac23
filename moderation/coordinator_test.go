package moderation

import (
	"errors"
	"testing"
	"time"

	"greenfield-bot/utils/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuilds struct {
	ids        []string
	failBans   map[string]bool
	failUnbans map[string]bool
	banCalls   []string
	unbanCalls []string
}

func (f *fakeGuilds) GuildIDs() []string { return f.ids }

func (f *fakeGuilds) Ban(guildID, userID, reason string) error {
	f.banCalls = append(f.banCalls, guildID)
	if f.failBans[guildID] {
		return errors.New("missing permissions")
	}
	return nil
}

func (f *fakeGuilds) Unban(guildID, userID string) error {
	f.unbanCalls = append(f.unbanCalls, guildID)
	if f.failUnbans[guildID] {
		return errors.New("unknown ban")
	}
	return nil
}

type fakeNotifier struct {
	calls int
	fail  bool
}

func (n *fakeNotifier) NotifyBan(userID, moderatorID, reason, expires string) error {
	n.calls++
	if n.fail {
		return errors.New("webhook unreachable")
	}
	return nil
}

func TestApplyGlobalBan_PartialFailure(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{
		ids:      []string{"g1", "g2", "g3"},
		failBans: map[string]bool{"g2": true},
	}
	notifier := &fakeNotifier{}
	coord := NewCoordinator(db, guilds, notifier)

	result, err := coord.ApplyGlobalBan("user1", "mod1", "raiding", "7d")
	require.NoError(t, err)
	assert.Equal(t, 2, result.GuildsBanned)
	assert.True(t, result.DurationOK)
	assert.True(t, result.ExpiresAt.Valid)
	assert.Equal(t, 1, notifier.calls)

	// The canonical record stands despite the per-guild failure.
	banned, err := coord.IsBanned("user1")
	require.NoError(t, err)
	assert.True(t, banned)

	// A later unban still succeeds and removes the record.
	unban, err := coord.RemoveGlobalBan("user1")
	require.NoError(t, err)
	assert.Equal(t, 3, unban.GuildsUnbanned)

	banned, err = coord.IsBanned("user1")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestApplyGlobalBan_PermanentAndOverwrite(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{ids: []string{"g1"}}
	coord := NewCoordinator(db, guilds, nil)

	first, err := coord.ApplyGlobalBan("user1", "mod1", "spam", "0")
	require.NoError(t, err)
	assert.False(t, first.ExpiresAt.Valid)

	// Last writer wins: the second ban replaces the first record.
	second, err := coord.ApplyGlobalBan("user1", "mod2", "worse spam", "1h")
	require.NoError(t, err)
	assert.True(t, second.ExpiresAt.Valid)

	ban, err := database.GetGlobalBan(db, "user1")
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Equal(t, "worse spam", ban.Reason)
	assert.Equal(t, "mod2", ban.BannedBy)
}

func TestApplyGlobalBan_ForgivingDuration(t *testing.T) {
	db := newTestDB(t)
	coord := NewCoordinator(db, &fakeGuilds{ids: []string{"g1"}}, nil)

	result, err := coord.ApplyGlobalBan("user1", "mod1", "typo", "3x")
	require.NoError(t, err)
	assert.False(t, result.DurationOK)
	assert.False(t, result.ExpiresAt.Valid, "unparseable duration becomes permanent")
}

func TestApplyGlobalBan_NotifierFailureIsNonFatal(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{ids: []string{"g1"}}
	notifier := &fakeNotifier{fail: true}
	coord := NewCoordinator(db, guilds, notifier)

	result, err := coord.ApplyGlobalBan("user1", "mod1", "spam", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, result.GuildsBanned)
	assert.Equal(t, 1, notifier.calls)

	banned, err := coord.IsBanned("user1")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestRemoveGlobalBan_NotBanned(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{ids: []string{"g1", "g2"}}
	coord := NewCoordinator(db, guilds, nil)

	_, err := coord.RemoveGlobalBan("ghost")
	assert.ErrorIs(t, err, ErrNotBanned)
	assert.Empty(t, guilds.unbanCalls, "no native unban calls for a user who was never banned")
}

func TestRemoveGlobalBan_SkipsFailedGuilds(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{
		ids:        []string{"g1", "g2"},
		failUnbans: map[string]bool{"g1": true},
	}
	coord := NewCoordinator(db, guilds, nil)

	_, err := coord.ApplyGlobalBan("user1", "mod1", "spam", "0")
	require.NoError(t, err)

	result, err := coord.RemoveGlobalBan("user1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.GuildsUnbanned)
}

func TestSweepExpiredBans(t *testing.T) {
	db := newTestDB(t)
	guilds := &fakeGuilds{ids: []string{"g1", "g2"}}
	coord := NewCoordinator(db, guilds, nil)

	base := time.Unix(1_700_000_000, 0)
	coord.now = func() time.Time { return base }

	_, err := coord.ApplyGlobalBan("temp", "mod1", "cooling off", "1h")
	require.NoError(t, err)
	_, err = coord.ApplyGlobalBan("perm", "mod1", "gone for good", "0")
	require.NoError(t, err)

	coord.now = func() time.Time { return base.Add(2 * time.Hour) }

	swept, err := coord.SweepExpiredBans()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	banned, err := coord.IsBanned("temp")
	require.NoError(t, err)
	assert.False(t, banned, "lapsed temporary ban must be removed")

	banned, err = coord.IsBanned("perm")
	require.NoError(t, err)
	assert.True(t, banned, "permanent bans are never swept")

	// Idempotent: nothing left to sweep.
	swept, err = coord.SweepExpiredBans()
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}
