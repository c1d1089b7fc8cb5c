package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Playback engine connection
	Engine EngineConfig `koanf:"engine"`

	// Desktop notifications on track change
	Notifications NotificationsConfig `koanf:"notifications"`
}

// EngineConfig holds the playback engine endpoint settings.
type EngineConfig struct {
	URL                 string  `koanf:"url"`                   // e.g., "ws://localhost:5720/ws"
	ReconnectInitialSec float64 `koanf:"reconnect_initial_sec"` // first redial delay (default: 1)
	ReconnectMaxSec     float64 `koanf:"reconnect_max_sec"`     // backoff ceiling (default: 30)
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Engine.URL == "" {
		cfg.Engine.URL = "ws://localhost:5720/ws"
	}
	cfg.Engine.URL = strings.TrimSuffix(cfg.Engine.URL, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cadence/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cadence", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ReconnectInitial returns the first redial delay with the default
// applied.
func (c *Config) ReconnectInitial() time.Duration {
	if c.Engine.ReconnectInitialSec <= 0 {
		return time.Second
	}
	return time.Duration(c.Engine.ReconnectInitialSec * float64(time.Second))
}

// ReconnectMax returns the backoff ceiling with the default applied.
func (c *Config) ReconnectMax() time.Duration {
	if c.Engine.ReconnectMaxSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Engine.ReconnectMaxSec * float64(time.Second))
}

// NotificationsEnabled returns whether track-change notifications are
// on, defaulting to true when unset.
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications.Enabled == nil {
		return true
	}
	return *c.Notifications.Enabled
}
