package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archon.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, 150*time.Millisecond, cfg.HoldWindow())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
frame_rate = 30
seed = 77
color_mode = "256"

[log]
enabled = true
level = "debug"

[input]
hold_ms = 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, "256", cfg.ColorMode)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir, "unset keys keep defaults")
	assert.Equal(t, 200, cfg.Input.HoldMs)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "frame_rate = 60\nframerate = 30\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framerate")
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeConfig(t, "frame_rate = \n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"huge frame rate", func(c *Config) { c.FrameRate = 1000 }},
		{"bad color mode", func(c *Config) { c.ColorMode = "16" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"logging without dir", func(c *Config) { c.Log.Enabled = true; c.Log.Dir = "" }},
		{"negative hold", func(c *Config) { c.Input.HoldMs = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadAutoExplicitPathMustExist(t *testing.T) {
	_, err := LoadAuto(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
