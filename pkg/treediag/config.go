// Package treediag provides the diagnostic surface the core tree packages
// call into: a debug-gated logger and optional OpenTelemetry metrics for
// Energy-tree rebuilds and RBT rotations. It exists because the original
// Energy tree logs every rebuild unconditionally (see spec Design Note
// #3, "omit this from the hot path") -- this package is what lets a
// caller opt back into that visibility without paying for it by default.
package treediag

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidLevel = errors.New("invalid diagnostics level")
	ErrInvalidAlpha = errors.New("alpha override must be in (0, 1)")
)

const (
	defaultLevel = "off"
	defaultAlpha = 0.5
)

// Config holds the operational knobs for tree diagnostics: how verbosely
// to log structural events, whether to export metrics, and what
// overcharge threshold the Energy tree amortization should use in place
// of its compiled-in 0.5.
type Config struct {
	Level          string  `mapstructure:"level"`
	MetricsEnabled bool    `mapstructure:"metrics_enabled"`
	Alpha          float64 `mapstructure:"alpha"`
}

// validLevels are the recognized values of Config.Level, ordered from
// least to most verbose.
var validLevels = map[string]int{"off": 0, "error": 1, "info": 2, "debug": 3}

// Load reads Config from configPath (if non-empty) and the environment,
// falling back to defaults for anything unset. Environment variables are
// read under the TREEDIAG_ prefix, e.g. TREEDIAG_LEVEL, TREEDIAG_ALPHA.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("level", defaultLevel)
	v.SetDefault("metrics_enabled", false)
	v.SetDefault("alpha", defaultAlpha)

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("treediag: read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("TREEDIAG")
	v.AutomaticEnv()

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("treediag: unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if _, ok := validLevels[c.Level]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}

	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidAlpha, c.Alpha)
	}

	return nil
}
