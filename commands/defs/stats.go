package defs

import "github.com/bwmarrin/discordgo"

var Stats = &discordgo.ApplicationCommand{
	Name:        "stats",
	Description: "Show project statistics",
}

var TechTicket = &discordgo.ApplicationCommand{
	Name:        "tech-ticket",
	Description: "Open a private support channel",
}
