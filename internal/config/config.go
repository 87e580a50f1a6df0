// Package config loads settings from defaults, an optional TOML file,
// environment variables and command-line flags, in that priority order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todo/internal/logging"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	defaultCharLimit = 200
	configDirName    = "todo"
	configFileName   = "config.toml"
)

// Config is the resolved application configuration.
type Config struct {
	Theme     string `toml:"theme"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	Seed      string `toml:"seed"`
	CharLimit int    `toml:"char_limit"`
}

// Dark reports whether the UI should start in the dark theme.
func (c *Config) Dark() bool { return c.Theme == ThemeDark }

// Overrides carries flag values; nil fields were not set on the command line.
type Overrides struct {
	ConfigFile *string
	Theme      *string
	LogFile    *string
	LogLevel   *string
	Seed       *string
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Theme:     ThemeLight,
		LogLevel:  "info",
		CharLimit: defaultCharLimit,
	}
}

// Load resolves the configuration:
// 1. Defaults
// 2. Config file (--config, else the user config dir when present)
// 3. Environment (TODO_THEME, TODO_LOG_FILE, TODO_LOG_LEVEL, TODO_SEED, TODO_CHAR_LIMIT)
// 4. Flags
func Load(ov Overrides) (*Config, error) {
	cfg := Default()

	path, explicit := "", false
	if ov.ConfigFile != nil && *ov.ConfigFile != "" {
		path, explicit = *ov.ConfigFile, true
	} else {
		path = findUserConfigFile()
	}
	if path != "" {
		if err := loadFile(cfg, path, explicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	applyOverrides(cfg, ov)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalises and checks the resolved values.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "":
		c.Theme = ThemeLight
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want light|dark)", c.Theme)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.CharLimit <= 0 {
		return fmt.Errorf("invalid char_limit %d (must be positive)", c.CharLimit)
	}
	return nil
}

func loadFile(cfg *Config, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_SEED"); v != "" {
		cfg.Seed = v
	}
	if v := os.Getenv("TODO_CHAR_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODO_CHAR_LIMIT: not a number: %s", v)
		}
		cfg.CharLimit = n
	}
	return nil
}

func applyOverrides(cfg *Config, ov Overrides) {
	if ov.Theme != nil {
		cfg.Theme = *ov.Theme
	}
	if ov.LogFile != nil {
		cfg.LogFile = *ov.LogFile
	}
	if ov.LogLevel != nil {
		cfg.LogLevel = *ov.LogLevel
	}
	if ov.Seed != nil {
		cfg.Seed = *ov.Seed
	}
}

// findUserConfigFile returns $XDG_CONFIG_HOME/todo/config.toml, falling back
// to ~/.config/todo/config.toml. Missing files are skipped by the caller.
func findUserConfigFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configDirName, configFileName)
}
