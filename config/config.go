// Package config loads and watches the user configuration file at
// $XDG_CONFIG_HOME/puffer/puffer.toml. A missing file means defaults;
// a malformed file keeps the previous configuration and logs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the user-tunable surface.
type Config struct {
	// FontPath overrides the built-in monospace face. Empty keeps it.
	FontPath string `toml:"font_path"`
	// FontSize is in points at 72 DPI.
	FontSize float64 `toml:"font_size"`
	// Theme names a built-in palette: "latte" or "mocha".
	Theme string `toml:"theme"`
	// Scrollback is the per-pane history line limit.
	Scrollback int `toml:"scrollback"`
	// BellEnabled toggles the audible bell; the visual flash always runs.
	BellEnabled bool `toml:"bell_enabled"`
	// Shell overrides $SHELL for new panes.
	Shell string `toml:"shell"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FontSize:    14,
		Theme:       "mocha",
		Scrollback:  10000,
		BellEnabled: true,
	}
}

// Path returns the config file location, creating nothing.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "puffer", "puffer.toml"), nil
}

// Load reads a config file over the defaults. A missing file is not an
// error; a malformed one is, and callers keep their previous config.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp forces out-of-range values back to sane bounds rather than
// rejecting the whole file.
func (c *Config) clamp() {
	if c.FontSize < 6 {
		c.FontSize = 6
	}
	if c.FontSize > 72 {
		c.FontSize = 72
	}
	if c.Scrollback < 0 {
		c.Scrollback = 0
	}
	if c.Scrollback > 200000 {
		c.Scrollback = 200000
	}
	if c.Theme != "latte" && c.Theme != "mocha" {
		c.Theme = "mocha"
	}
}
