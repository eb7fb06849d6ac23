package commands

import (
	"greenfield-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// Generate returns the global slash command set.
func Generate() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Warn,
		defs.Warnings,
		defs.GlobalBan,
		defs.GlobalUnban,
		defs.Panel,
		defs.AssignmentStats,
		defs.Stats,
		defs.TechTicket,
		defs.SetRole,
	}
}
