package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 30, cfg.Announce.Interval)
	assert.Equal(t, 100, cfg.Audio.Volume)
	assert.Equal(t, BackendAuto, cfg.Audio.Backend)
	assert.NotEmpty(t, cfg.Audio.Dir)
	assert.True(t, cfg.History.Enabled)
	assert.NotEmpty(t, cfg.History.File)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Announce.Interval, cfg.Announce.Interval)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[audio]
dir = "/srv/clips"
volume = 60
backend = "command"
player_command = "paplay"

[announce]
interval = 15

[history]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/clips", cfg.Audio.Dir)
	assert.Equal(t, 60, cfg.Audio.Volume)
	assert.Equal(t, BackendCommand, cfg.Audio.Backend)
	assert.Equal(t, "paplay", cfg.Audio.PlayerCommand)
	assert.Equal(t, 15, cfg.Announce.Interval)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"interval 15", func(c *Config) { c.Announce.Interval = 15 }, ""},
		{"interval 60", func(c *Config) { c.Announce.Interval = 60 }, ""},
		{"bad interval", func(c *Config) { c.Announce.Interval = 20 }, "invalid interval"},
		{"zero interval", func(c *Config) { c.Announce.Interval = 0 }, "invalid interval"},
		{"volume too high", func(c *Config) { c.Audio.Volume = 120 }, "invalid volume"},
		{"negative volume", func(c *Config) { c.Audio.Volume = -1 }, "invalid volume"},
		{"bad backend", func(c *Config) { c.Audio.Backend = "pygame" }, "invalid backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPathsUseXDGOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	assert.Equal(t, "/tmp/xdg-config/shomoy/config.toml", ConfigPath())
	assert.Equal(t, "/tmp/xdg-data/shomoy", DataPath())
	assert.Equal(t, "/tmp/xdg-data/shomoy/clips", ClipsPath())
	assert.Equal(t, "/tmp/xdg-data/shomoy/history.jsonl", HistoryPath())
}
