package tasks

import (
	"fmt"
	"log"
	"time"

	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// GenerateModerationStatsEmbed builds the periodic moderation summary.
func GenerateModerationStatsEmbed(db *sqlx.DB) (*discordgo.MessageEmbed, error) {
	now := time.Now()

	banCount, err := database.CountGlobalBans(db)
	if err != nil {
		return nil, fmt.Errorf("failed to count global bans: %w", err)
	}

	warnCount, err := database.CountActiveWarnsGlobal(db, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to count active warns: %w", err)
	}

	assignCount, err := database.CountAssignments(db)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:     "Moderation Overview",
		Timestamp: now.Format(time.RFC3339),
		Color:     0x00ff00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🚫 Global bans", Value: fmt.Sprintf("%d", banCount), Inline: true},
			{Name: "⚠️ Active warnings", Value: fmt.Sprintf("%d", warnCount), Inline: true},
			{Name: "✅ Assignments", Value: fmt.Sprintf("%d", assignCount), Inline: true},
		},
	}
	return embed, nil
}

// UpdateModerationStats posts the moderation summary to the stats channel.
func UpdateModerationStats(s *discordgo.Session, db *sqlx.DB, channelID string) {
	embed, err := GenerateModerationStatsEmbed(db)
	if err != nil {
		log.Printf("Failed to generate moderation stats embed: %v", err)
		return
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send moderation stats to channel %s: %v", channelID, err)
	}
}
