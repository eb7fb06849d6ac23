package config

import (
	"fmt"
	"log"
	"os"

	"greenfield-bot/model"

	"github.com/spf13/viper"
)

// LoadSettings reads the settings file. A missing file is not an error;
// every value has a default so the bot can start from a bare environment.
func LoadSettings(path string) (model.Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("welcome_message", "Welcome to the Greenfield Project! {social_links}")
	v.SetDefault("warn_window_days", 7)
	v.SetDefault("max_warns", 3)
	v.SetDefault("sweep_interval_minutes", 60)
	v.SetDefault("moderator_role_keys", []string{
		"chief_admin", "deputy_chief", "chief_curator", "senior_admin", "admin",
	})
	v.SetDefault("management_role_keys", []string{
		"leadership", "project_team", "chief_admin", "deputy_chief", "chief_curator",
	})

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || isConfigNotFound(err) {
			log.Printf("Warning: settings file not found at %s, using defaults", path)
		} else {
			return model.Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	var settings model.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

func isConfigNotFound(err error) bool {
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}
