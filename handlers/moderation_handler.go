package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"greenfield-bot/bot"
	"greenfield-bot/moderation"
	"greenfield-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func isModerator(b *bot.Bot, member *discordgo.Member) bool {
	if utils.MemberHasAnyRole(member, b.Config.SuperAdminRoleIDs) {
		return true
	}
	return utils.MemberHasRoleKey(b.DB, member, b.Config.Settings.ModeratorRoleKeys)
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func HandleWarnCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have permission to issue warnings.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := "Not specified"
	if opt, ok := opts["reason"]; ok {
		reason = opt.StringValue()
	}

	outcome, err := b.Engine.IssueWarning(target.ID, i.GuildID, i.Member.User.ID, reason)
	if err != nil {
		log.Printf("Failed to issue warning: %v", err)
		respondEphemeral(s, i, "❌ Failed to record the warning. Nothing was issued.")
		return
	}

	maxWarns := b.Engine.MaxWarns()
	if outcome.Escalate {
		err := s.GuildBanCreateWithReason(i.GuildID, target.ID,
			fmt.Sprintf("Warning limit exceeded (%d)", outcome.ActiveCount), 0)
		if err != nil {
			respondPublic(s, i, fmt.Sprintf(
				"⚠️ %s received warning %d/%d, but the bot lacks permission to ban.",
				target.Mention(), outcome.ActiveCount, maxWarns))
			return
		}
		respondPublic(s, i, fmt.Sprintf(
			"🚫 %s has been banned for exceeding the warning limit (%d/%d).",
			target.Mention(), outcome.ActiveCount, maxWarns))
		return
	}

	respondPublic(s, i, fmt.Sprintf(
		"⚠️ %s received a warning (%d/%d).\nReason: %s",
		target.Mention(), outcome.ActiveCount, maxWarns, reason))
}

func HandleWarningsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this command.")
		return
	}

	target := optionMap(i)["user"].UserValue(s)
	warns, err := b.Engine.ListActiveWarnings(target.ID, i.GuildID)
	if err != nil {
		log.Printf("Failed to list warnings: %v", err)
		respondEphemeral(s, i, "❌ Failed to look up warnings.")
		return
	}

	if len(warns) == 0 {
		respondEphemeral(s, i, fmt.Sprintf("✅ %s has no active warnings.", target.Mention()))
		return
	}

	var lines []string
	for _, w := range warns {
		lines = append(lines, fmt.Sprintf("🔹 `%s` (until <t:%d:R>)", w.Reason, w.ExpiresAt))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Warnings for %s", target.Username),
		Description: strings.Join(lines, "\n"),
		Color:       0xe74c3c,
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond with warnings: %v", err)
	}
}

func HandleGlobalBanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have permission to issue bans.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	duration := "0"
	if opt, ok := opts["duration"]; ok {
		duration = opt.StringValue()
	}
	reason := "Not specified"
	if opt, ok := opts["reason"]; ok {
		reason = opt.StringValue()
	}

	applyGlobalBan(s, i, b, target.ID, duration, reason)
}

func applyGlobalBan(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, targetID, duration, reason string) {
	if !utils.CheckAndSetBanLock(targetID) {
		respondEphemeral(s, i, "⏳ A ban action for this user was just processed. Try again later.")
		return
	}

	result, err := b.Coordinator.ApplyGlobalBan(targetID, i.Member.User.ID, reason, duration)
	if err != nil {
		log.Printf("Failed to apply global ban: %v", err)
		respondEphemeral(s, i, "❌ Failed to record the global ban.")
		return
	}

	msg := fmt.Sprintf("🌍 <@%s> is globally banned (%s). Banned on %d servers.",
		targetID, moderation.FormatExpiry(result.ExpiresAt), result.GuildsBanned)
	if !result.DurationOK {
		msg += "\n⚠️ Duration `" + duration + "` did not parse; the ban was made permanent."
	}
	respondEphemeral(s, i, msg)
}

func HandleGlobalUnbanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have permission to lift bans.")
		return
	}

	target := optionMap(i)["user"].UserValue(s)
	result, err := b.Coordinator.RemoveGlobalBan(target.ID)
	if errors.Is(err, moderation.ErrNotBanned) {
		respondEphemeral(s, i, "❌ This user is not globally banned.")
		return
	}
	if err != nil {
		log.Printf("Failed to remove global ban: %v", err)
		respondEphemeral(s, i, "❌ Failed to lift the global ban.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"✅ Global ban lifted for %s. Unbanned on %d servers.",
		target.Mention(), result.GuildsUnbanned))
}

// HandleGlobalBanButton opens the global-ban form from the management panel.
func HandleGlobalBanButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have permission to issue bans.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "globalban_modal",
			Title:    "🌍 Global Ban",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "user_id",
						Label:       "User ID",
						Style:       discordgo.TextInputShort,
						Placeholder: "123456789012345678",
						Required:    true,
						MaxLength:   20,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "duration",
						Label:     "Duration (e.g. 7d, 0 = permanent)",
						Style:     discordgo.TextInputShort,
						Value:     "0",
						Required:  true,
						MaxLength: 10,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "reason",
						Label:     "Reason",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: 300,
					},
				}},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to open global ban modal: %v", err)
	}
}

func HandleGlobalBanModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !isModerator(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have permission to issue bans.")
		return
	}

	values := modalValues(i)
	userID := strings.TrimSpace(values["user_id"])
	if !isSnowflake(userID) {
		respondEphemeral(s, i, "❌ Invalid user ID.")
		return
	}

	applyGlobalBan(s, i, b, userID, values["duration"], values["reason"])
}

func modalValues(i *discordgo.InteractionCreate) map[string]string {
	values := make(map[string]string)
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

func isSnowflake(id string) bool {
	if len(id) < 15 || len(id) > 20 {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
