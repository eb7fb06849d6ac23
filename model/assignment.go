package model

// Role types recorded in assignment logs.
const (
	RoleTypeAdmin  = "admin"
	RoleTypeLeader = "leader"
	RoleTypeMedia  = "media"
)

// AssignmentLog is an append-only audit record of a privileged role grant.
type AssignmentLog struct {
	ID         int64  `db:"id"`
	AssignerID string `db:"assigner_id"`
	AssignedID string `db:"assigned_id"`
	RoleType   string `db:"role_type"`
	Reason     string `db:"reason"`
	Timestamp  int64  `db:"timestamp"`
}
