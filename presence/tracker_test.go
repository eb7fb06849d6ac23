package presence

import (
	"testing"
	"time"

	"greenfield-bot/utils/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *sqlx.DB) {
	t.Helper()
	db, err := database.Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTracker(db), db
}

func TestConnectDisconnect_AccumulatesElapsed(t *testing.T) {
	tracker, db := newTestTracker(t)

	base := time.Unix(1_700_000_000, 0)
	tracker.now = func() time.Time { return base }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(90 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	assert.Equal(t, int64(90), total)

	row, err := database.GetOnlineTime(db, "user1", "guild1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.LastJoin.Valid, "last_join must be cleared after disconnect")
}

func TestDisconnectWithoutConnect_IsNoOp(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestDoubleDisconnect_DoesNotDoubleCount(t *testing.T) {
	tracker, _ := newTestTracker(t)

	base := time.Unix(1_700_000_000, 0)
	tracker.now = func() time.Time { return base }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(30 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
}

func TestReconnect_PreservesTotal(t *testing.T) {
	tracker, _ := newTestTracker(t)

	base := time.Unix(1_700_000_000, 0)
	tracker.now = func() time.Time { return base }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(60 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(300 * time.Second) }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(360 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)
}

func TestDoubleConnect_OverwritesLastJoin(t *testing.T) {
	tracker, _ := newTestTracker(t)

	base := time.Unix(1_700_000_000, 0)
	tracker.now = func() time.Time { return base }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	// Second connect without a disconnect drops the first session's time.
	tracker.now = func() time.Time { return base.Add(100 * time.Second) }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))

	tracker.now = func() time.Time { return base.Add(130 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
}

func TestTotalsAreScopedPerGuild(t *testing.T) {
	tracker, _ := newTestTracker(t)

	base := time.Unix(1_700_000_000, 0)
	tracker.now = func() time.Time { return base }
	require.NoError(t, tracker.OnConnect("user1", "guild1"))
	require.NoError(t, tracker.OnConnect("user1", "guild2"))

	tracker.now = func() time.Time { return base.Add(10 * time.Second) }
	require.NoError(t, tracker.OnDisconnect("user1", "guild1"))

	total1, err := tracker.TotalSeconds("user1", "guild1")
	require.NoError(t, err)
	total2, err := tracker.TotalSeconds("user1", "guild2")
	require.NoError(t, err)
	assert.Equal(t, int64(10), total1)
	assert.Equal(t, int64(0), total2, "guild2 session is still open")
}
