package handlers

import (
	"log"

	"greenfield-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// HandleVoiceStateUpdate feeds voice connect/disconnect events into the
// presence tracker. Channel-to-channel moves inside a guild are neither a
// connect nor a disconnect.
func HandleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate, b *bot.Bot) {
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}

	var before string
	if v.BeforeUpdate != nil {
		before = v.BeforeUpdate.ChannelID
	}
	after := v.ChannelID

	switch {
	case before == "" && after != "":
		if err := b.Tracker.OnConnect(v.UserID, v.GuildID); err != nil {
			log.Printf("Failed to track voice connect for user %s: %v", v.UserID, err)
		}
	case before != "" && after == "":
		if err := b.Tracker.OnDisconnect(v.UserID, v.GuildID); err != nil {
			log.Printf("Failed to track voice disconnect for user %s: %v", v.UserID, err)
		}
	}
}
