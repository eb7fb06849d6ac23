package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the project database and ensures all tables exist.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS project_roles (
		    role_name TEXT PRIMARY KEY,
		    role_id TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS assignment_logs (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    assigner_id TEXT NOT NULL,
		    assigned_id TEXT NOT NULL,
		    role_type TEXT NOT NULL,
		    reason TEXT NOT NULL,
		    timestamp INTEGER DEFAULT (strftime('%s', 'now'))
		);`,
		`CREATE TABLE IF NOT EXISTS global_bans (
		    user_id TEXT PRIMARY KEY,
		    reason TEXT NOT NULL,
		    banned_by TEXT NOT NULL,
		    expires_at INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS warns (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    user_id TEXT NOT NULL,
		    guild_id TEXT NOT NULL,
		    moderator_id TEXT NOT NULL,
		    reason TEXT NOT NULL,
		    expires_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS online_time (
		    user_id TEXT,
		    guild_id TEXT,
		    last_join INTEGER,
		    total_seconds INTEGER DEFAULT 0,
		    PRIMARY KEY (user_id, guild_id)
		);`,
		`CREATE TABLE IF NOT EXISTS tech_tickets (
		    ticket_id INTEGER PRIMARY KEY AUTOINCREMENT,
		    user_id TEXT NOT NULL,
		    guild_id TEXT NOT NULL,
		    channel_id TEXT NOT NULL,
		    status TEXT DEFAULT 'open',
		    created_at INTEGER DEFAULT (strftime('%s', 'now'))
		);`,
	}

	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}

	return db, nil
}
