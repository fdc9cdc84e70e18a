package logger

import (
	"fmt"
	"slices"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level" env:"LOG_LEVEL" envDefault:"info"`
	Format    string `yaml:"format" mapstructure:"format" env:"LOG_FORMAT" envDefault:"console"`
	Output    string `yaml:"output" mapstructure:"output" env:"LOG_OUTPUT" envDefault:"stdout"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color" env:"LOG_NO_COLOR"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp" env:"LOG_TIMESTAMP" envDefault:"true"`
	Caller    bool   `yaml:"caller" mapstructure:"caller" env:"LOG_CALLER"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error", "fatal", "trace", "disabled"}
	if !slices.Contains(validLevels, c.Level) {
		return fmt.Errorf("logging.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validFormats := []string{"json", "console", "text"}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("logging.format must be one of %v (got: %s)", validFormats, c.Format)
	}
	return nil
}
