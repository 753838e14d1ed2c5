// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultInterval = 30
	DefaultVolume   = 100
	DefaultBackend  = "auto"
)

// Backend selection values for AudioConfig.Backend.
const (
	BackendAuto    = "auto"    // prefer the built-in speaker, fall back to a command player
	BackendSpeaker = "speaker" // in-process playback only
	BackendCommand = "command" // external player subprocess only
)

// Config represents the shomoy configuration.
type Config struct {
	Audio    AudioConfig    `toml:"audio"`
	Announce AnnounceConfig `toml:"announce"`
	History  HistoryConfig  `toml:"history"`
}

// AudioConfig holds playback settings.
type AudioConfig struct {
	Dir           string `toml:"dir"`            // Clips directory (default: ~/.local/share/shomoy/clips)
	Volume        int    `toml:"volume"`         // 0-100, speaker backend only
	Backend       string `toml:"backend"`        // auto, speaker, command
	PlayerCommand string `toml:"player_command"` // External player override, e.g. "aplay -q"
}

// AnnounceConfig holds announcement scheduling settings.
type AnnounceConfig struct {
	Interval int `toml:"interval"` // Minutes between announcements: 15, 30 or 60
}

// HistoryConfig holds announcement log settings.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"` // Log path (default: ~/.local/share/shomoy/history.jsonl)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			Dir:     ClipsPath(),
			Volume:  DefaultVolume,
			Backend: DefaultBackend,
		},
		Announce: AnnounceConfig{
			Interval: DefaultInterval,
		},
		History: HistoryConfig{
			Enabled: true,
			File:    HistoryPath(),
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shomoy", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "shomoy")
}

// ClipsPath returns the default audio clips directory.
func ClipsPath() string {
	return filepath.Join(DataPath(), "clips")
}

// HistoryPath returns the default announcement log path.
func HistoryPath() string {
	return filepath.Join(DataPath(), "history.jsonl")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the announcer cannot run with.
func (c *Config) Validate() error {
	switch c.Announce.Interval {
	case 15, 30, 60:
	default:
		return fmt.Errorf("invalid interval %d: must be 15, 30 or 60", c.Announce.Interval)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("invalid volume %d: must be between 0 and 100", c.Audio.Volume)
	}

	switch c.Audio.Backend {
	case BackendAuto, BackendSpeaker, BackendCommand:
	default:
		return fmt.Errorf("invalid backend %q: must be auto, speaker or command", c.Audio.Backend)
	}

	return nil
}
