package model

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// TechTicket tracks a private support channel opened for a user.
type TechTicket struct {
	TicketID  int64  `db:"ticket_id"`
	UserID    string `db:"user_id"`
	GuildID   string `db:"guild_id"`
	ChannelID string `db:"channel_id"`
	Status    string `db:"status"`
	CreatedAt int64  `db:"created_at"`
}
