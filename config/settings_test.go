package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7, settings.WarnWindowDays)
	assert.Equal(t, 3, settings.MaxWarns)
	assert.Equal(t, 60, settings.SweepIntervalMins)
	assert.Contains(t, settings.ModeratorRoleKeys, "admin")
	assert.Contains(t, settings.ManagementRoleKeys, "leadership")
	assert.NotEmpty(t, settings.WelcomeMessage)
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `welcome_message: "Hello! {social_links}"
warn_window_days: 14
max_warns: 5
moderator_role_keys:
  - sheriff
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "Hello! {social_links}", settings.WelcomeMessage)
	assert.Equal(t, 14, settings.WarnWindowDays)
	assert.Equal(t, 5, settings.MaxWarns)
	assert.Equal(t, []string{"sheriff"}, settings.ModeratorRoleKeys)
	assert.Equal(t, 60, settings.SweepIntervalMins, "unset keys keep defaults")
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_warns: [not: valid"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
