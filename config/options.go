package config

import (
	"github.com/kbukum/confkit/envvar"
	"github.com/kbukum/confkit/logger"
	"github.com/kbukum/confkit/observability"
)

// options holds builder dependencies.
type options struct {
	fs         FileSystem
	log        *logger.Logger
	convention envvar.Convention
	prefix     string
	lookup     envvar.Lookup
	metrics    *observability.LoadMetrics
}

// Option is a functional option for New.
type Option func(*options)

// WithFileSystem sets a custom filesystem for file and env file reads.
func WithFileSystem(fs FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the logger used for load events.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithEnvConvention selects how schema paths map to variable names.
func WithEnvConvention(c envvar.Convention) Option {
	return func(o *options) { o.convention = c }
}

// WithEnvPrefix prepends prefix to every variable name (APP_DATABASE_HOST).
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvLookup replaces the process environment as the variable source.
func WithEnvLookup(l envvar.Lookup) Option {
	return func(o *options) { o.lookup = l }
}

// WithMetrics records load counts and durations on m instead of the global
// meter provider.
func WithMetrics(m *observability.LoadMetrics) Option {
	return func(o *options) { o.metrics = m }
}

func defaultOptions() options {
	return options{
		fs:         RealFileSystem{},
		convention: envvar.Legacy,
		lookup:     envvar.OS{},
	}
}
