package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Playback.TypingIntervalMs != def.Playback.TypingIntervalMs {
		t.Errorf("typing interval = %d, want default %d",
			cfg.Playback.TypingIntervalMs, def.Playback.TypingIntervalMs)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	src := `
[playback]
typing_interval_ms = 80
default_demo = "dryrun"

[catalog]
paths = ["demos.toml"]
watch = false

[theme]
green = "#00FF00"

[log]
level = "debug"
`
	path := filepath.Join(t.TempDir(), "termplay.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TypingInterval() != 80*time.Millisecond {
		t.Errorf("TypingInterval = %v, want 80ms", cfg.TypingInterval())
	}
	if cfg.Playback.DefaultDemo != "dryrun" {
		t.Errorf("default demo = %q, want dryrun", cfg.Playback.DefaultDemo)
	}
	if cfg.Catalog.Watch {
		t.Error("watch should be disabled by the file")
	}
	if len(cfg.Catalog.Paths) != 1 || cfg.Catalog.Paths[0] != "demos.toml" {
		t.Errorf("catalog paths = %v", cfg.Catalog.Paths)
	}
	if cfg.Theme["green"] != "#00FF00" {
		t.Errorf("theme green = %q", cfg.Theme["green"])
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"zero typing interval", func(c *Config) { c.Playback.TypingIntervalMs = 0 }, true},
		{"negative debounce", func(c *Config) { c.Catalog.WatchDebounceMs = -1 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad theme color", func(c *Config) { c.Theme["cyan"] = "not-a-color" }, true},
		{"good theme color", func(c *Config) { c.Theme["cyan"] = "#0FF" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid log level")
	}
}
