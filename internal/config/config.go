// Package config loads the player configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termplay/internal/style"
)

// Config holds every tunable of the player.
type Config struct {
	Playback PlaybackConfig    `toml:"playback"`
	Catalog  CatalogConfig     `toml:"catalog"`
	Theme    map[string]string `toml:"theme"`
	Log      LogConfig         `toml:"log"`
}

// PlaybackConfig tunes session timing.
type PlaybackConfig struct {
	// TypingIntervalMs is the pause between revealed characters on the
	// first line of a demo.
	TypingIntervalMs int `toml:"typing_interval_ms"`

	// DefaultDemo plays automatically on startup. Empty means none.
	DefaultDemo string `toml:"default_demo"`
}

// CatalogConfig lists external demo catalog files.
type CatalogConfig struct {
	// Paths are catalog files layered over the builtin demos, in order.
	Paths []string `toml:"paths"`

	// Watch reloads catalogs when their files change.
	Watch bool `toml:"watch"`

	// WatchDebounceMs coalesces rapid file events.
	WatchDebounceMs int `toml:"watch_debounce_ms"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			TypingIntervalMs: 45,
			DefaultDemo:      "hero",
		},
		Catalog: CatalogConfig{
			Watch:           true,
			WatchDebounceMs: 100,
		},
		Theme: map[string]string{},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file is not an error;
// defaults are returned. Values present in the file override defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	if c.Playback.TypingIntervalMs <= 0 {
		return fmt.Errorf("playback.typing_interval_ms must be positive, got %d", c.Playback.TypingIntervalMs)
	}
	if c.Catalog.WatchDebounceMs < 0 {
		return fmt.Errorf("catalog.watch_debounce_ms must not be negative, got %d", c.Catalog.WatchDebounceMs)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	for tag, hex := range c.Theme {
		if _, err := style.FromHex(hex); err != nil {
			return fmt.Errorf("theme.%s: %w", tag, err)
		}
	}
	return nil
}

// TypingInterval returns the typing pause as a duration.
func (c *Config) TypingInterval() time.Duration {
	return time.Duration(c.Playback.TypingIntervalMs) * time.Millisecond
}

// WatchDebounce returns the catalog watch debounce as a duration.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Catalog.WatchDebounceMs) * time.Millisecond
}
