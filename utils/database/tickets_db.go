package database

import (
	"database/sql"
	"fmt"

	"greenfield-bot/model"

	"github.com/jmoiron/sqlx"
)

// AddTechTicket records a newly opened support channel and returns the ticket ID.
func AddTechTicket(db *sqlx.DB, ticket model.TechTicket) (int64, error) {
	query := `INSERT INTO tech_tickets (user_id, guild_id, channel_id, status, created_at)
	          VALUES (:user_id, :guild_id, :channel_id, :status, :created_at)`

	result, err := db.NamedExec(query, ticket)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tech ticket: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// GetTicketUserByChannel resolves the ticket author for a support channel.
// Returns ok=false when the channel is not a known ticket.
func GetTicketUserByChannel(db *sqlx.DB, channelID string) (string, bool, error) {
	var userID string
	err := db.Get(&userID, `SELECT user_id FROM tech_tickets WHERE channel_id = ?`, channelID)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get ticket for channel %s: %w", channelID, err)
	}
	return userID, true, nil
}

// CloseTechTicket marks the ticket for a channel as closed.
func CloseTechTicket(db *sqlx.DB, channelID string) error {
	query := `UPDATE tech_tickets SET status = ? WHERE channel_id = ?`
	if _, err := db.Exec(query, model.TicketStatusClosed, channelID); err != nil {
		return fmt.Errorf("failed to close ticket for channel %s: %w", channelID, err)
	}
	return nil
}
