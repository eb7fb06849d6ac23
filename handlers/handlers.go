package handlers

import (
	"log"
	"strings"

	"greenfield-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// Register wires all gateway and interaction handlers onto the session.
func Register(b *bot.Bot) {
	cmdHandlers := commandHandlers(b)

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			name := i.ApplicationCommandData().Name
			if handler, ok := cmdHandlers[name]; ok {
				handler(s, i)
			} else {
				log.Printf("No handler for command: %s", name)
			}
		case discordgo.InteractionMessageComponent:
			handleComponent(s, i, b)
		case discordgo.InteractionModalSubmit:
			handleModalSubmit(s, i, b)
		}
	})

	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		HandleGuildMemberAdd(s, m, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		HandleVoiceStateUpdate(s, v, b)
	})
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"warn": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarnCommand(s, i, b)
		},
		"warnings": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarningsCommand(s, i, b)
		},
		"global-ban": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleGlobalBanCommand(s, i, b)
		},
		"global-unban": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleGlobalUnbanCommand(s, i, b)
		},
		"panel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandlePanelCommand(s, i, b)
		},
		"assignment-stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleAssignmentStatsCommand(s, i, b)
		},
		"stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleStatsCommand(s, i, b)
		},
		"tech-ticket": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleTechTicketCommand(s, i, b)
		},
		"set-role": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetRoleCommand(s, i, b)
		},
	}
}

func handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "panel_assign:"):
		HandleAssignButton(s, i, b, strings.TrimPrefix(customID, "panel_assign:"))
	case customID == "panel_globalban":
		HandleGlobalBanButton(s, i, b)
	case customID == "ticket_accept":
		HandleTicketAccept(s, i, b)
	case customID == "ticket_close":
		HandleTicketClose(s, i, b)
	default:
		log.Printf("No handler for component: %s", customID)
	}
}

func handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.ModalSubmitData().CustomID
	switch {
	case strings.HasPrefix(customID, "assign_modal:"):
		HandleAssignModalSubmit(s, i, b, strings.TrimPrefix(customID, "assign_modal:"))
	case customID == "globalban_modal":
		HandleGlobalBanModalSubmit(s, i, b)
	default:
		log.Printf("No handler for modal: %s", customID)
	}
}

// respondEphemeral sends a simple ephemeral text response.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// respondPublic sends a non-ephemeral text response.
func respondPublic(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
