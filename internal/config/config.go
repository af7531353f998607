// Package config provides runtime configuration values for the multiplier
// binary.
package config

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "MULTIPLIER"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the logging knobs. None of them affect standard output.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelWarn,
		LogFormat: FormatText,
	}
}

// Load collects configuration from the environment with defaults.
//
// Invalid values are replaced by their defaults; the returned Config is always
// usable, and the error describes what was ignored.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", FormatText)

	cfg := Default()
	var errs []string

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		cfg.LogLevel = Default().LogLevel
		errs = append(errs, errors.Wrapf(err, "%s_LOG_LEVEL", EnvPrefix).Error())
	}

	switch f := strings.ToLower(strings.TrimSpace(v.GetString("log_format"))); f {
	case FormatText, FormatJSON:
		cfg.LogFormat = f
	default:
		errs = append(errs, errors.Errorf("%s_LOG_FORMAT: unknown format %q", EnvPrefix, f).Error())
	}

	if len(errs) > 0 {
		return cfg, errors.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}
