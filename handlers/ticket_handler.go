package handlers

import (
	"fmt"
	"log"
	"time"

	"greenfield-bot/bot"
	"greenfield-bot/model"
	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

const ticketCategoryName = "🔧 Tech Support"

// HandleTechTicketCommand creates a private support channel for the user.
func HandleTechTicketCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	techRoleID, ok, err := database.GetProjectRoleID(b.DB, "tech_support")
	if err != nil {
		log.Printf("Failed to resolve tech support role: %v", err)
		respondEphemeral(s, i, "❌ Failed to look up the tech support role.")
		return
	}
	if !ok {
		respondEphemeral(s, i, "❌ The tech support role is not configured. Contact the administration.")
		return
	}

	parentID := findOrCreateTicketCategory(s, i.GuildID)

	everyoneID := i.GuildID // the @everyone role shares the guild ID
	channel, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:     "tech-" + i.Member.User.Username,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: parentID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				ID:   everyoneID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:    i.Member.User.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
			},
			{
				ID:    techRoleID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
			},
		},
	})
	if err != nil {
		log.Printf("Failed to create ticket channel: %v", err)
		respondEphemeral(s, i, "❌ Could not create the support channel.")
		return
	}

	ticket := model.TechTicket{
		UserID:    i.Member.User.ID,
		GuildID:   i.GuildID,
		ChannelID: channel.ID,
		Status:    model.TicketStatusOpen,
		CreatedAt: time.Now().Unix(),
	}
	if _, err := database.AddTechTicket(b.DB, ticket); err != nil {
		log.Printf("Failed to record ticket: %v", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📩 New support ticket",
		Description: fmt.Sprintf("User: %s\nDescribe your problem.", i.Member.User.Mention()),
		Color:       0x3498db,
	}
	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "✅ Accept", Style: discordgo.SuccessButton, CustomID: "ticket_accept"},
				discordgo.Button{Label: "🔒 Close", Style: discordgo.DangerButton, CustomID: "ticket_close"},
			}},
		},
	})
	if err != nil {
		log.Printf("Failed to send ticket message: %v", err)
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ Channel created: <#%s>", channel.ID))
}

func findOrCreateTicketCategory(s *discordgo.Session, guildID string) string {
	channels, err := s.GuildChannels(guildID)
	if err == nil {
		for _, ch := range channels {
			if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == ticketCategoryName {
				return ch.ID
			}
		}
	}
	category, err := s.GuildChannelCreate(guildID, ticketCategoryName, discordgo.ChannelTypeGuildCategory)
	if err != nil {
		log.Printf("Failed to create ticket category: %v", err)
		return ""
	}
	return category.ID
}

// HandleTicketAccept narrows the channel to the author and the accepting
// technician.
func HandleTicketAccept(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	authorID, ok, err := database.GetTicketUserByChannel(b.DB, i.ChannelID)
	if err != nil {
		log.Printf("Failed to look up ticket: %v", err)
		respondEphemeral(s, i, "❌ Failed to look up the ticket.")
		return
	}
	if !ok {
		respondEphemeral(s, i, "❌ This channel is not a known ticket.")
		return
	}

	allow := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
	if err := s.ChannelPermissionSet(i.ChannelID, i.Member.User.ID, discordgo.PermissionOverwriteTypeMember, allow, 0); err != nil {
		log.Printf("Failed to grant technician access: %v", err)
	}
	if err := s.ChannelPermissionSet(i.ChannelID, authorID, discordgo.PermissionOverwriteTypeMember, allow, 0); err != nil {
		log.Printf("Failed to confirm author access: %v", err)
	}
	// Drop the broad tech_support role overwrite so only the accepting
	// technician keeps access.
	if techRoleID, ok, err := database.GetProjectRoleID(b.DB, "tech_support"); err == nil && ok {
		if err := s.ChannelPermissionDelete(i.ChannelID, techRoleID); err != nil {
			log.Printf("Failed to remove tech role overwrite: %v", err)
		}
	}

	respondPublic(s, i, fmt.Sprintf("✅ Ticket accepted by %s.", i.Member.User.Mention()))
}

// HandleTicketClose closes the ticket and deletes its channel.
func HandleTicketClose(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := database.CloseTechTicket(b.DB, i.ChannelID); err != nil {
		log.Printf("Failed to close ticket: %v", err)
	}
	if _, err := s.ChannelDelete(i.ChannelID); err != nil {
		log.Printf("Failed to delete ticket channel: %v", err)
		respondEphemeral(s, i, "❌ Could not delete the channel.")
	}
}
