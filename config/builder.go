package config

import (
	"github.com/kbukum/confkit/decode"
	"github.com/kbukum/confkit/errors"
	"github.com/kbukum/confkit/logger"
	"github.com/kbukum/confkit/observability"
	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/schema"
)

type fileSource struct {
	path   string
	decode decode.Func
}

// Builder accumulates configuration sources for a schema. Adding sources
// performs no I/O; files and variables are read when a load method runs.
// A Builder is not safe for concurrent mutation.
type Builder[T any] struct {
	schema   schema.Schema[T]
	opts     options
	log      *logger.Logger
	values   []record.Record
	files    []fileSource
	env      bool
	envFiles []string
	err      error
}

// New returns a Builder that validates into T with s.
func New[T any](s schema.Schema[T], opts ...Option) *Builder[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder[T]{schema: s, opts: o, log: o.log}
	if b.log == nil {
		b.log = logger.Get("config")
	}
	if b.opts.metrics == nil {
		if m, err := observability.DefaultLoadMetrics(); err == nil {
			b.opts.metrics = m
		}
	}
	if s == nil {
		b.err = errors.InvalidSchema("schema is nil")
	}
	return b
}

// AddValue appends in-memory records. Later records override earlier ones.
func (b *Builder[T]) AddValue(records ...record.Record) *Builder[T] {
	b.values = append(b.values, records...)
	return b
}

// AddFile registers a file decoded with fn. A nil fn decodes JSON.
func (b *Builder[T]) AddFile(path string, fn decode.Func) *Builder[T] {
	if fn == nil {
		fn = decode.JSON
	}
	b.files = append(b.files, fileSource{path: path, decode: fn})
	return b
}

// AddFiles registers JSON files in order.
func (b *Builder[T]) AddFiles(paths ...string) *Builder[T] {
	for _, p := range paths {
		b.AddFile(p, nil)
	}
	return b
}

// EnableEnv turns on environment resolution. Calling it again has no effect.
func (b *Builder[T]) EnableEnv() *Builder[T] {
	b.env = true
	return b
}

// AddEnvFile registers .env files consulted after the process environment,
// earlier files first, and enables environment resolution. A variable set in
// the process always wins over the same name in a file.
func (b *Builder[T]) AddEnvFile(paths ...string) *Builder[T] {
	b.envFiles = append(b.envFiles, paths...)
	return b.EnableEnv()
}
