package config

import (
	"context"

	"github.com/kbukum/confkit/logger"
	"github.com/kbukum/confkit/schema"
	"github.com/kbukum/confkit/validation"
)

// ServiceConfig contains the essential configuration fields every service needs.
// Projects extend this by embedding it in their own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Database DatabaseConfig `yaml:"database" mapstructure:"database"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the base ServiceConfig.
// When embedded in a larger config struct, this method is promoted.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the struct tags and the logging section.
func (c *ServiceConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Logger builds a logger from the logging section tagged with the service name.
func (c *ServiceConfig) Logger() *logger.Logger {
	return logger.New(&c.Logging, c.Name)
}

// LoadService discovers config.{yml,yaml,json,toml} and .env files for
// serviceName, layers the process environment on top and validates into T.
func LoadService[T any](ctx context.Context, serviceName string, s schema.Schema[T], opts ...Option) (T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	resolver := &Resolver{FileSystem: o.fs}
	files := resolver.ResolveFiles(serviceName, ResolvedFiles{})

	return New(s, opts...).
		AddResolved(files).
		EnableEnv().
		Load(ctx)
}
