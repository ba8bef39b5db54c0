// Package config loads statfang CLI configuration from file, environment,
// and defaults.
package config

import (
	"errors"
	"fmt"
)

// Output format names.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults applied when neither file nor environment sets a value.
const (
	DefaultOutput      = OutputText
	DefaultSampleCount = 1000
	DefaultPlotTheme   = "westeros"
	DefaultPlotWidth   = "900px"
	DefaultPlotHeight  = "500px"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration struct for statfang.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output string       `mapstructure:"output"`
	Sample SampleConfig `mapstructure:"sample"`
	Plot   PlotConfig   `mapstructure:"plot"`
}

// SampleConfig holds sampling command settings.
type SampleConfig struct {
	// Count is the default number of draws when -n is not given.
	Count int `mapstructure:"count"`
	// Seed pins the random source when non-zero; zero means time-seeded.
	Seed uint64 `mapstructure:"seed"`
}

// PlotConfig holds chart rendering settings.
type PlotConfig struct {
	Theme  string `mapstructure:"theme"`
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
}

// Validate checks cross-field constraints after unmarshalling.
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: output %q (want %q or %q)",
			ErrInvalidConfig, c.Output, OutputText, OutputJSON)
	}

	if c.Sample.Count <= 0 {
		return fmt.Errorf("%w: sample count %d must be positive",
			ErrInvalidConfig, c.Sample.Count)
	}

	return nil
}
