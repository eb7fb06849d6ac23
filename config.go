package main

import (
	"log"
	"os"
	"strings"

	"greenfield-bot/config"
	"greenfield-bot/model"

	"github.com/joho/godotenv"
)

// LoadConfig loads configuration from environment variables and the
// settings file.
func LoadConfig() *model.Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	banSyncWebhookURL := os.Getenv("BAN_SYNC_WEBHOOK_URL")
	if banSyncWebhookURL == "" {
		log.Println("Warning: BAN_SYNC_WEBHOOK_URL not set, ban notifications will be disabled")
	}

	logWebhookURL := os.Getenv("LOG_WEBHOOK_URL")
	if logWebhookURL == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, operational logging to Discord will be disabled")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/greenfield.db"
	}

	cfg := &model.Config{
		BotToken:            token,
		AppID:               os.Getenv("APP_ID"),
		DBPath:              dbPath,
		BanSyncWebhookURL:   banSyncWebhookURL,
		LogWebhookURL:       logWebhookURL,
		StatsChannelID:      os.Getenv("STATS_CHANNEL_ID"),
		DefaultMemberRoleID: os.Getenv("ROLE_DEFAULT_MEMBER"),
		SocialLinks:         os.Getenv("SOCIAL_LINKS"),
		SuperAdminRoleIDs:   splitIDs(os.Getenv("SUPER_ADMIN_ROLE_IDS")),
	}

	settings, err := config.LoadSettings("data/settings.yaml")
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	cfg.Settings = settings

	return cfg
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
