package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReconnectDefaults(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantInitial time.Duration
		wantMax     time.Duration
	}{
		{
			name:        "unset uses defaults",
			cfg:         Config{},
			wantInitial: time.Second,
			wantMax:     30 * time.Second,
		},
		{
			name: "explicit values",
			cfg: Config{Engine: EngineConfig{
				ReconnectInitialSec: 0.5,
				ReconnectMaxSec:     10,
			}},
			wantInitial: 500 * time.Millisecond,
			wantMax:     10 * time.Second,
		},
		{
			name: "negative falls back to defaults",
			cfg: Config{Engine: EngineConfig{
				ReconnectInitialSec: -1,
				ReconnectMaxSec:     -1,
			}},
			wantInitial: time.Second,
			wantMax:     30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ReconnectInitial(); got != tt.wantInitial {
				t.Errorf("ReconnectInitial() = %v, want %v", got, tt.wantInitial)
			}
			if got := tt.cfg.ReconnectMax(); got != tt.wantMax {
				t.Errorf("ReconnectMax() = %v, want %v", got, tt.wantMax)
			}
		})
	}
}

func TestNotificationsEnabled(t *testing.T) {
	var cfg Config
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false when unset, want true")
	}

	off := false
	cfg.Notifications.Enabled = &off
	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true with explicit false")
	}
}

// chdir changes to dir for the duration of the test, as t.Chdir does on
// newer Go releases (unavailable on the toolchain used to build this).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaultEngineURL(t *testing.T) {
	// No config file in a scratch working dir: defaults apply.
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.URL != "ws://localhost:5720/ws" {
		t.Errorf("Engine.URL = %q", cfg.Engine.URL)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `
icons = "unicode"

[engine]
url = "ws://media-box:9000/ws/"
reconnect_initial_sec = 2.0

[notifications]
enabled = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q", cfg.Icons)
	}
	if cfg.Engine.URL != "ws://media-box:9000/ws" {
		t.Errorf("Engine.URL = %q, want trailing slash trimmed", cfg.Engine.URL)
	}
	if got := cfg.ReconnectInitial(); got != 2*time.Second {
		t.Errorf("ReconnectInitial() = %v", got)
	}
	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true, want false from file")
	}
}
