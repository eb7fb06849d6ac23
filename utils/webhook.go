package utils

import (
	"fmt"
	"time"
)

// BanSyncNotifier posts global-ban audit embeds to the configured webhook.
// It implements moderation.Notifier.
type BanSyncNotifier struct {
	WebhookURL string
}

// NotifyBan sends one notification per ban decision. Failures are the
// caller's to log; the ban itself is never rolled back.
func (n *BanSyncNotifier) NotifyBan(userID, moderatorID, reason, expires string) error {
	embed := DiscordEmbed{
		Title: "🌍 Global Ban",
		Description: fmt.Sprintf("**User:** <@%s>\n**Moderator:** <@%s>\n**Reason:** %s\n**Duration:** %s",
			userID, moderatorID, reason, expires),
		Color:     0xe74c3c,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	payload := DiscordWebhookPayload{
		Username: "Greenfield Ban Sync",
		Embeds:   []DiscordEmbed{embed},
	}
	return postWebhook(n.WebhookURL, payload)
}
