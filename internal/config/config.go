// Package config holds the settings of the treectl command.
package config

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Config is the top-level configuration of treectl.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Build  BuildConfig  `mapstructure:"build"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// BuildConfig holds bulk loading settings.
type BuildConfig struct {
	Shuffle bool  `mapstructure:"shuffle"`
	Seed    int64 `mapstructure:"seed"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Style string `mapstructure:"style"`
}

// Default values.
const (
	DefaultLogLevel     = "warn"
	DefaultBuildShuffle = false
	DefaultBuildSeed    = int64(0)
	DefaultOutputStyle  = "light"
)

// Styles lists the accepted values of output.style.
var Styles = []string{"default", "light", "rounded", "double", "bold"}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidLogLevel indicates log.level isn't a zap level.
	ErrInvalidLogLevel = errors.New("log.level must be one of debug, info, warn, error")
	// ErrInvalidOutputStyle indicates output.style isn't one of Styles.
	ErrInvalidOutputStyle = errors.New("output.style must be one of default, light, rounded, double, bold")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if !slices.Contains(Styles, c.Output.Style) {
		return errors.Wrapf(ErrInvalidOutputStyle, "got %q", c.Output.Style)
	}
	return nil
}

// ZapLevel parses Level.
func (c LogConfig) ZapLevel() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return l, errors.Wrapf(ErrInvalidLogLevel, "got %q", c.Level)
	}
	return l, nil
}
