package config

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultConfigPath is checked when no path is given on the command line
const DefaultConfigPath = "archon.toml"

// Config is the host configuration
type Config struct {
	FrameRate int    `toml:"frame_rate"`
	Seed      uint64 `toml:"seed"`       // 0 picks a time based seed
	ColorMode string `toml:"color_mode"` // auto, 256 or truecolor

	Log   LogConfig   `toml:"log"`
	Input InputConfig `toml:"input"`
}

// LogConfig controls the file logger; the terminal is owned by the game so logs never go to stderr
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Dir     string `toml:"dir"`
}

// InputConfig tunes the key collector
type InputConfig struct {
	// HoldMs is how long a key press counts as held without a repeat
	HoldMs int `toml:"hold_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FrameRate: 60,
		ColorMode: "auto",
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
		Input: InputConfig{HoldMs: 150},
	}
}

// FrameInterval returns the host tick period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// HoldWindow returns the key hold window
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return errors.Errorf("frame_rate %d out of range [1, 240]", c.FrameRate)
	}
	switch c.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return errors.Errorf("color_mode %q must be auto, 256 or truecolor", c.ColorMode)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level %q", c.Log.Level)
	}
	if c.Log.Enabled && c.Log.Dir == "" {
		return errors.New("log.dir is required when logging is enabled")
	}
	if c.Input.HoldMs < 0 {
		return errors.Errorf("input.hold_ms %d must not be negative", c.Input.HoldMs)
	}
	return nil
}

// Load reads path over the defaults
// A missing file yields the defaults; unknown keys are an error
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// LoadAuto resolves the config with priority: customPath > DefaultConfigPath > built-in defaults
// An explicit path must exist
func LoadAuto(customPath string) (Config, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return Config{}, errors.Wrap(err, "config file not found")
		}
		return Load(customPath)
	}
	return Load(DefaultConfigPath)
}
