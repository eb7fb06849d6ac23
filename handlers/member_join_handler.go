package handlers

import (
	"log"
	"strings"

	"greenfield-bot/bot"
	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// HandleGuildMemberAdd grants the default member role and sends the
// welcome message. Both steps are best-effort; a closed DM or a missing
// role never blocks the join.
func HandleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd, b *bot.Bot) {
	if m.User.Bot {
		return
	}

	roleID := b.Config.DefaultMemberRoleID
	if roleID == "" {
		var ok bool
		var err error
		roleID, ok, err = database.GetProjectRoleID(b.DB, "default_member")
		if err != nil {
			log.Printf("Failed to resolve default member role: %v", err)
		}
		if !ok {
			roleID = ""
		}
	}
	if roleID != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, roleID); err != nil {
			log.Printf("Failed to grant default role to user %s: %v", m.User.ID, err)
		}
	}

	welcome := b.Config.Settings.WelcomeMessage
	if welcome == "" {
		return
	}
	welcome = strings.ReplaceAll(welcome, "{social_links}", b.Config.SocialLinks)

	channel, err := s.UserChannelCreate(m.User.ID)
	if err != nil {
		log.Printf("Failed to open DM with user %s: %v", m.User.ID, err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, welcome); err != nil {
		// The user likely has DMs disabled.
		log.Printf("Failed to send welcome message to user %s: %v", m.User.ID, err)
	}
}
