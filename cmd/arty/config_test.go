package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults When Default File Missing", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		cfg, path, exists, err := loadConfig("")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, filepath.Join(xdg, "arty", "config.toml"), path)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("Reads Default Location", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		require.NoError(t, os.MkdirAll(filepath.Join(xdg, "arty"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(xdg, "arty", "config.toml"), []byte(`format = "yaml"`), 0o644))

		cfg, _, exists, err := loadConfig("")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("Explicit File", func(t *testing.T) {
		path := writeConfig(t, `
log_level = "DEBUG"
format = " YAML "
locking = true
`)
		cfg, resolved, exists, err := loadConfig(path)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, path, resolved)
		assert.Equal(t, cliConfig{LogLevel: "debug", Format: "yaml", Locking: true}, cfg)
	})

	t.Run("Explicit File Missing", func(t *testing.T) {
		_, _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	invalid := map[string]string{
		"syntax":      `format = `,
		"unknown key": `colour = "blue"`,
		"bad level":   `log_level = "loud"`,
		"bad format":  `format = "xml"`,
		"wrong type":  `locking = "yes"`,
	}
	for name, content := range invalid {
		t.Run("Invalid "+name, func(t *testing.T) {
			_, _, _, err := loadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := parseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseLevel("chatty")
	assert.Error(t, err)
}
