// Package config loads the user configuration from a TOML file in the
// platform config directory. Everything has a sensible default; a
// missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Version int        `toml:"version"`
	Log     LogConfig  `toml:"log"`
	UI      UISettings `toml:"ui"`
}

// LogConfig controls the log file the TUI writes to.
type LogConfig struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

// UISettings are the cosmetic knobs of the panel layout.
type UISettings struct {
	FocusColor   string `toml:"focus_color"`    // ANSI color for the focused panel border
	BorderColor  string `toml:"border_color"`   // ANSI color for unfocused panel borders
	ShowHelpHint bool   `toml:"show_help_hint"` // footer "? for help" line
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: 1,
		Log: LogConfig{
			File: "binspect.log",
		},
		UI: UISettings{
			FocusColor:   "220", // yellow
			BorderColor:  "241", // gray
			ShowHelpHint: true,
		},
	}
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "binspect", "config.toml")
}

// Load reads the configuration at path. A missing file yields the
// defaults; a malformed file is an error so typos do not silently reset
// the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
