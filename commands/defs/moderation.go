package defs

import "github.com/bwmarrin/discordgo"

var Warn = &discordgo.ApplicationCommand{
	Name:        "warn",
	Description: "Issue a warning to a member",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The member to warn",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    false,
		},
	},
}

var Warnings = &discordgo.ApplicationCommand{
	Name:        "warnings",
	Description: "Show a member's active warnings",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The member to inspect",
			Required:    true,
		},
	},
}

var GlobalBan = &discordgo.ApplicationCommand{
	Name:        "global-ban",
	Description: "Ban a user on every project server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Duration like 7d or 12h, 0 = permanent",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
	},
}

var GlobalUnban = &discordgo.ApplicationCommand{
	Name:        "global-unban",
	Description: "Lift a global ban",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to unban",
			Required:    true,
		},
	},
}
