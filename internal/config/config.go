// Package config loads application settings from TOML files. A missing
// file is not an error; callers always get a usable configuration with
// defaults filled in.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ecarlucci/tessera/internal/theme"
)

// LogConfig controls the application log.
type LogConfig struct {
	// Level is the minimum severity: debug, info, warn or error.
	Level string `toml:"level"`
	// File is the log destination. Empty disables file logging; the
	// terminal owns stdout and stderr while the UI runs.
	File string `toml:"file"`
}

// InputConfig controls the event loop.
type InputConfig struct {
	// PollMS bounds the input wait so the screen re-renders
	// periodically even without input.
	PollMS int `toml:"poll_ms"`
}

// ScriptConfig controls Lua automation.
type ScriptConfig struct {
	// File is a Lua script run once at startup. Empty disables it.
	File string `toml:"file"`
}

// Config is the root of the TOML schema.
type Config struct {
	Log    LogConfig      `toml:"log"`
	Input  InputConfig    `toml:"input"`
	Script ScriptConfig   `toml:"script"`
	Theme  theme.Settings `toml:"theme"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Input: InputConfig{PollMS: 100},
	}
}

// PollInterval returns the configured poll bound as a duration.
func (c Config) PollInterval() time.Duration {
	ms := c.Input.PollMS
	if ms <= 0 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads the configuration at path. A missing file yields the
// defaults with no error. Malformed TOML yields a *ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Default(), perr
	}

	return cfg, nil
}
