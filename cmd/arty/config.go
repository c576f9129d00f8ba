package main

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// cliConfig is the optional user configuration of the arty command.
//
//	log_level = "debug"
//	format    = "yaml"
//	locking   = true
type cliConfig struct {
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`
	Locking  bool   `toml:"locking"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		LogLevel: "info",
		Format:   "json",
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/arty/config.toml, falling back
// to ~/.config/arty/config.toml.
func defaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "arty", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "arty", "config.toml"), nil
}

// loadConfig reads the configuration at path, or at the default location when
// path is empty. A missing file yields the defaults; an explicitly requested
// file must exist.
func loadConfig(path string) (cliConfig, string, bool, error) {
	cfg := defaultConfig()

	explicit := strings.TrimSpace(path) != ""
	resolved := strings.TrimSpace(path)
	if !explicit {
		var err error
		resolved, err = defaultConfigPath()
		if err != nil {
			return cliConfig{}, "", false, err
		}
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, iofs.ErrNotExist) && !explicit:
		return cfg, resolved, false, nil
	case err != nil:
		return cliConfig{}, "", false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cliConfig{}, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	if err := cfg.normalize(); err != nil {
		return cliConfig{}, "", false, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, resolved, true, nil
}

func (c *cliConfig) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("format must be json or yaml, got %q", c.Format)
	}
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", name)
	}
	return level, nil
}
