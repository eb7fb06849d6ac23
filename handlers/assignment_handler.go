package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"greenfield-bot/bot"
	"greenfield-bot/model"
	"greenfield-bot/utils"
	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// roleTypeNames maps assignment role types to panel labels. The role type
// doubles as the project_roles key for the granted role.
var roleTypeNames = map[string]string{
	model.RoleTypeAdmin:  "administrator",
	model.RoleTypeLeader: "leader",
	model.RoleTypeMedia:  "media",
}

func hasManagementAccess(b *bot.Bot, member *discordgo.Member) bool {
	if utils.MemberHasAnyRole(member, b.Config.SuperAdminRoleIDs) {
		return true
	}
	return utils.MemberHasRoleKey(b.DB, member, b.Config.Settings.ManagementRoleKeys)
}

// HandlePanelCommand opens the management panel.
func HandlePanelCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !hasManagementAccess(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this panel.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛠️ Management Panel",
		Description: "Choose an action:",
		Color:       0x3498db,
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "👤 Assign admin",
						Style:    discordgo.PrimaryButton,
						CustomID: "panel_assign:" + model.RoleTypeAdmin,
					},
					discordgo.Button{
						Label:    "👑 Assign leader",
						Style:    discordgo.SuccessButton,
						CustomID: "panel_assign:" + model.RoleTypeLeader,
					},
					discordgo.Button{
						Label:    "🎥 Assign media",
						Style:    discordgo.SecondaryButton,
						CustomID: "panel_assign:" + model.RoleTypeMedia,
					},
					discordgo.Button{
						Label:    "🔨 Global ban",
						Style:    discordgo.DangerButton,
						CustomID: "panel_globalban",
					},
				}},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to open management panel: %v", err)
	}
}

// HandleAssignButton opens the assignment form for one role type.
func HandleAssignButton(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, roleType string) {
	if !hasManagementAccess(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this panel.")
		return
	}
	name, ok := roleTypeNames[roleType]
	if !ok {
		respondEphemeral(s, i, "❌ Unknown role type.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "assign_modal:" + roleType,
			Title:    "Assign " + name,
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
						CustomID:  "reason",
						Label:     "Reason for the assignment",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: 300,
					},
				}},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to open assign modal: %v", err)
	}
}

// HandleAssignModalSubmit grants the mapped role and writes the audit log.
func HandleAssignModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, roleType string) {
	if !hasManagementAccess(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this panel.")
		return
	}

	values := modalValues(i)
	userID := strings.TrimSpace(values["user_id"])
	reason := values["reason"]
	if !isSnowflake(userID) {
		respondEphemeral(s, i, "❌ Invalid user ID.")
		return
	}

	member, err := s.GuildMember(i.GuildID, userID)
	if err != nil || member == nil {
		respondEphemeral(s, i, "❌ User not found on this server.")
		return
	}

	roleID, ok, err := database.GetProjectRoleID(b.DB, roleType)
	if err != nil {
		log.Printf("Failed to resolve role for %s: %v", roleType, err)
		respondEphemeral(s, i, "❌ Failed to look up the role binding.")
		return
	}
	if !ok {
		respondEphemeral(s, i, fmt.Sprintf("❌ No role is bound for key `%s`. Use /set-role first.", roleType))
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, userID, roleID); err != nil {
		log.Printf("Failed to add role %s to user %s: %v", roleID, userID, err)
		respondEphemeral(s, i, "❌ Could not grant the role (missing permission?). Nothing was logged.")
		return
	}

	entry := model.AssignmentLog{
		AssignerID: i.Member.User.ID,
		AssignedID: userID,
		RoleType:   roleType,
		Reason:     reason,
		Timestamp:  time.Now().Unix(),
	}
	if _, err := database.AddAssignmentLog(b.DB, entry); err != nil {
		log.Printf("Failed to record assignment: %v", err)
		respondEphemeral(s, i, "⚠️ Role granted, but the assignment could not be logged.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ <@%s> assigned as %s.", userID, roleTypeNames[roleType]))
}

var roleTypeEmoji = map[string]string{
	model.RoleTypeAdmin:  "👤",
	model.RoleTypeLeader: "👑",
	model.RoleTypeMedia:  "🎥",
}

// HandleAssignmentStatsCommand shows the last 20 assignments.
func HandleAssignmentStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !hasManagementAccess(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this command.")
		return
	}

	entries, err := database.GetRecentAssignments(b.DB, 20)
	if err != nil {
		log.Printf("Failed to get recent assignments: %v", err)
		respondEphemeral(s, i, "❌ Failed to load assignment history.")
		return
	}
	if len(entries) == 0 {
		respondEphemeral(s, i, "📭 No assignments recorded.")
		return
	}

	var lines []string
	for _, e := range entries {
		emoji, ok := roleTypeEmoji[e.RoleType]
		if !ok {
			emoji = "📌"
		}
		lines = append(lines, fmt.Sprintf("%s <@%s> → <@%s> | %s (<t:%d:R>)",
			emoji, e.AssignerID, e.AssignedID, e.Reason, e.Timestamp))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Assignment History",
		Description: strings.Join(lines, "\n"),
		Color:       0x2ecc71,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Last 20 assignments"},
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond with assignment stats: %v", err)
	}
}

// HandleSetRoleCommand binds a project role key to a server role.
func HandleSetRoleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !hasManagementAccess(b, i.Member) {
		respondEphemeral(s, i, "❌ You do not have access to this command.")
		return
	}

	opts := optionMap(i)
	key := strings.TrimSpace(opts["key"].StringValue())
	role := opts["role"].RoleValue(s, i.GuildID)
	if key == "" || role == nil {
		respondEphemeral(s, i, "❌ Both a key and a role are required.")
		return
	}

	if err := database.SetProjectRole(b.DB, key, role.ID); err != nil {
		log.Printf("Failed to set project role: %v", err)
		respondEphemeral(s, i, "❌ Failed to save the role binding.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ Key `%s` now maps to role %s.", key, role.Mention()))
}
