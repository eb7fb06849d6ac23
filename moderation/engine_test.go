package moderation

import (
	"testing"
	"time"

	"greenfield-bot/utils/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestIssueWarning_EscalatesOnThird(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	first, err := engine.IssueWarning("user1", "guild1", "mod1", "spam")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ActiveCount)
	assert.False(t, first.Escalate)

	second, err := engine.IssueWarning("user1", "guild1", "mod1", "spam again")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ActiveCount)
	assert.False(t, second.Escalate)

	third, err := engine.IssueWarning("user1", "guild1", "mod2", "still spamming")
	require.NoError(t, err)
	assert.Equal(t, 3, third.ActiveCount)
	assert.True(t, third.Escalate)
}

func TestIssueWarning_CountsPerGuildAndUser(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	for j := 0; j < 2; j++ {
		_, err := engine.IssueWarning("user1", "guild1", "mod1", "spam")
		require.NoError(t, err)
	}
	_, err := engine.IssueWarning("user2", "guild1", "mod1", "spam")
	require.NoError(t, err)

	outcome, err := engine.IssueWarning("user1", "guild2", "mod1", "spam")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.ActiveCount, "other guilds and users must not count")
	assert.False(t, outcome.Escalate)
}

func TestListActiveWarnings_ExcludesExpired(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	base := time.Unix(1_700_000_000, 0)
	engine.now = func() time.Time { return base }

	_, err := engine.IssueWarning("user1", "guild1", "mod1", "old")
	require.NoError(t, err)

	// Jump past the 7-day window; the warning is inactive even though it
	// has not been swept yet.
	engine.now = func() time.Time { return base.Add(DefaultWarnWindow + time.Second) }

	warns, err := engine.ListActiveWarnings("user1", "guild1")
	require.NoError(t, err)
	assert.Empty(t, warns)

	outcome, err := engine.IssueWarning("user1", "guild1", "mod1", "new")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.ActiveCount, "expired warning must not count toward escalation")

	warns, err = engine.ListActiveWarnings("user1", "guild1")
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "new", warns[0].Reason)
}

func TestListActiveWarnings_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	for _, reason := range []string{"first", "second"} {
		_, err := engine.IssueWarning("user1", "guild1", "mod1", reason)
		require.NoError(t, err)
	}

	warns, err := engine.ListActiveWarnings("user1", "guild1")
	require.NoError(t, err)
	require.Len(t, warns, 2)
	assert.Equal(t, "first", warns[0].Reason)
	assert.Equal(t, "second", warns[1].Reason)
}

func TestSweepExpired_Idempotent(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	base := time.Unix(1_700_000_000, 0)
	engine.now = func() time.Time { return base }

	_, err := engine.IssueWarning("user1", "guild1", "mod1", "expires")
	require.NoError(t, err)
	_, err = engine.IssueWarning("user2", "guild1", "mod1", "expires too")
	require.NoError(t, err)

	engine.now = func() time.Time { return base.Add(DefaultWarnWindow + time.Second) }

	deleted, err := engine.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = engine.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted, "second sweep must delete nothing")
}

func TestSweepExpired_LeavesActiveWarnings(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, 0, 0)

	_, err := engine.IssueWarning("user1", "guild1", "mod1", "fresh")
	require.NoError(t, err)

	deleted, err := engine.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	warns, err := engine.ListActiveWarnings("user1", "guild1")
	require.NoError(t, err)
	assert.Len(t, warns, 1)
}
