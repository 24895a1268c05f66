// Package config loads and validates gameloop.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thruflo/gameloop/internal/logging"
)

// Default values for Config.
const (
	DefaultUpdatesPerSecond = 100
	DefaultMaxTicks         = 500
	DefaultFrameDelay       = 16 * time.Millisecond
	DefaultSpiralThreshold  = 5
	DefaultLogLevel         = "warn"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Loop: LoopConfig{
			UpdatesPerSecond: DefaultUpdatesPerSecond,
		},
		Run: RunConfig{
			MaxTicks:        DefaultMaxTicks,
			FrameDelay:      DefaultFrameDelay,
			SpiralThreshold: DefaultSpiralThreshold,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the YAML file at path. An empty path or a
// missing file yields the default config. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Loop.UpdatesPerSecond <= 0 {
		return ValidationError{Field: "loop.updates_per_second", Message: "must be positive"}
	}
	if cfg.Loop.UpdatesPerSecond > int(time.Second) {
		return ValidationError{Field: "loop.updates_per_second", Message: "must not exceed one update per nanosecond"}
	}
	if cfg.Run.MaxTicks < 0 {
		return ValidationError{Field: "run.max_ticks", Message: "must not be negative"}
	}
	if cfg.Run.Simulated && cfg.Run.MaxTicks == 0 {
		return ValidationError{Field: "run.max_ticks", Message: "must be positive for simulated runs"}
	}
	if cfg.Run.FrameDelay < 0 {
		return ValidationError{Field: "run.frame_delay", Message: "must not be negative"}
	}
	if cfg.Run.SpiralThreshold < 0 {
		return ValidationError{Field: "run.spiral_threshold", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// LogLevel returns the parsed log level. The config is assumed valid.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
