package defs

import "github.com/bwmarrin/discordgo"

var Panel = &discordgo.ApplicationCommand{
	Name:        "panel",
	Description: "Open the management panel for role assignments",
}

var AssignmentStats = &discordgo.ApplicationCommand{
	Name:        "assignment-stats",
	Description: "Show the latest role assignments",
}

var SetRole = &discordgo.ApplicationCommand{
	Name:        "set-role",
	Description: "Bind a project role key to a server role",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "key",
			Description: "Role key, e.g. admin, leadership, tech_support",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The server role to bind",
			Required:    true,
		},
	},
}
