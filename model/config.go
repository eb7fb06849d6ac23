package model

// Config holds process-level configuration loaded from the environment.
type Config struct {
	BotToken            string
	AppID               string
	DBPath              string
	BanSyncWebhookURL   string
	LogWebhookURL       string
	StatsChannelID      string
	DefaultMemberRoleID string
	SocialLinks         string
	SuperAdminRoleIDs   []string
	Settings            Settings
}

// Settings are the tunables read from the settings file.
type Settings struct {
	WelcomeMessage     string   `mapstructure:"welcome_message"`
	WarnWindowDays     int      `mapstructure:"warn_window_days"`
	MaxWarns           int      `mapstructure:"max_warns"`
	SweepIntervalMins  int      `mapstructure:"sweep_interval_minutes"`
	ModeratorRoleKeys  []string `mapstructure:"moderator_role_keys"`
	ManagementRoleKeys []string `mapstructure:"management_role_keys"`
}
