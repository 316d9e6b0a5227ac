// Package config holds parley's user configuration: theme, keybindings,
// notifications, and logging. Config lives in a single YAML file and can be
// hot-reloaded via the watcher in this package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all parley configuration.
type Config struct {
	// UI appearance and behavior
	UI UIConfig `yaml:"ui"`

	// Desktop notification triggers
	Notifications NotificationsConfig `yaml:"notifications"`

	// Keybindings for the chat surface
	Keys KeysConfig `yaml:"keys"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Bug reporting
	BugReport BugReportConfig `yaml:"bug_report"`
}

// UIConfig configures the chat surface.
type UIConfig struct {
	Theme         string `yaml:"theme"`          // auto, light, dark
	Markdown      bool   `yaml:"markdown"`       // render assistant markdown via glamour
	TokenBudget   int    `yaml:"token_budget"`   // estimated-token ceiling shown in the status bar
	PaletteHeight int    `yaml:"palette_height"` // max visible palette rows
}

// NotificationsConfig configures desktop notification triggers.
type NotificationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Method  string `yaml:"method"` // osc777, osc9, bell, none
}

// KeysConfig configures chat keybindings. Values are Bubble Tea key names.
type KeysConfig struct {
	OpenPalette string `yaml:"open_palette"`
	Submit      string `yaml:"submit"`
	Quit        string `yaml:"quit"`
}

// LoggingConfig controls the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// BugReportConfig configures the bug-report URL builder.
type BugReportConfig struct {
	Repo string `yaml:"repo,omitempty"` // override the default issue tracker
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:         "auto",
			Markdown:      true,
			TokenBudget:   128000,
			PaletteHeight: 10,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Method:  "osc777",
		},
		Keys: KeysConfig{
			OpenPalette: "ctrl+k",
			Submit:      "enter",
			Quit:        "ctrl+c",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns ~/.parley/config.yaml, or a relative fallback when the
// home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".parley", "config.yaml")
	}
	return filepath.Join(home, ".parley", "config.yaml")
}

// Load reads the config file at path, filling gaps with defaults and then
// applying PARLEY_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults plus env.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets environment variables win over the file, which
// keeps ephemeral tweaks (CI, demos) out of the persisted config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARLEY_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PARLEY_NOTIFY"); v != "" {
		c.Notifications.Enabled = v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "on")
	}
	if v := os.Getenv("PARLEY_NOTIFY_METHOD"); v != "" {
		c.Notifications.Method = v
	}
	if v := os.Getenv("PARLEY_DEBUG"); v != "" {
		c.Logging.DebugMode = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("PARLEY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects values the UI cannot act on.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme %q (want auto, light, or dark)", c.UI.Theme)
	}

	switch c.Notifications.Method {
	case "osc777", "osc9", "bell", "none", "":
	default:
		return fmt.Errorf("invalid notifications.method %q", c.Notifications.Method)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	if c.UI.PaletteHeight < 0 {
		return fmt.Errorf("ui.palette_height must be >= 0, got %d", c.UI.PaletteHeight)
	}
	return nil
}
