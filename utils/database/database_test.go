package database

import (
	"testing"
	"time"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProjectRoles_SetAndResolve(t *testing.T) {
	db := newTestDB(t)

	_, ok, err := GetProjectRoleID(db, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetProjectRole(db, "admin", "111"))
	roleID, ok, err := GetProjectRoleID(db, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "111", roleID)

	// Rebinding overwrites the previous ID.
	require.NoError(t, SetProjectRole(db, "admin", "222"))
	roleID, _, err = GetProjectRoleID(db, "admin")
	require.NoError(t, err)
	assert.Equal(t, "222", roleID)
}

func TestAssignmentLogs_AppendAndRead(t *testing.T) {
	db := newTestDB(t)

	now := time.Now().Unix()
	for i, roleType := range []string{model.RoleTypeAdmin, model.RoleTypeLeader, model.RoleTypeMedia} {
		_, err := AddAssignmentLog(db, model.AssignmentLog{
			AssignerID: "boss",
			AssignedID: "worker",
			RoleType:   roleType,
			Reason:     "earned it",
			Timestamp:  now + int64(i),
		})
		require.NoError(t, err)
	}

	count, err := CountAssignments(db)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	entries, err := GetRecentAssignments(db, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.RoleTypeMedia, entries[0].RoleType, "newest first")
}

func TestGlobalBans_UpsertIsUnique(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertGlobalBan(db, model.GlobalBan{UserID: "u1", Reason: "a", BannedBy: "m1"}))
	require.NoError(t, UpsertGlobalBan(db, model.GlobalBan{UserID: "u1", Reason: "b", BannedBy: "m2"}))

	count, err := CountGlobalBans(db)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "at most one record per user")

	ban, err := GetGlobalBan(db, "u1")
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Equal(t, "b", ban.Reason)

	existed, err := DeleteGlobalBan(db, "u1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = DeleteGlobalBan(db, "u1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestTechTickets_Lifecycle(t *testing.T) {
	db := newTestDB(t)

	_, err := AddTechTicket(db, model.TechTicket{
		UserID:    "u1",
		GuildID:   "g1",
		ChannelID: "c1",
		Status:    model.TicketStatusOpen,
		CreatedAt: time.Now().Unix(),
	})
	require.NoError(t, err)

	userID, ok, err := GetTicketUserByChannel(db, "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)

	_, ok, err = GetTicketUserByChannel(db, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, CloseTechTicket(db, "c1"))
}

func TestOnlineTime_SumPerGuild(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SetVoiceJoin(db, "u1", "g1", 100))
	require.NoError(t, FoldVoiceLeave(db, "u1", "g1", 60))
	require.NoError(t, SetVoiceJoin(db, "u2", "g1", 100))
	require.NoError(t, FoldVoiceLeave(db, "u2", "g1", 40))

	total, err := TotalGuildSeconds(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	total, err = TotalGuildSeconds(db, "empty")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
