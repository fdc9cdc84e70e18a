// Package config collects configuration sources and loads them into a typed
// value.
//
// Sources are registered on a Builder without any I/O. Loading reads every
// file, resolves environment variables declared by the schema and merges the
// three tiers with fixed precedence, values < files < environment, whatever
// order they were registered in. The merged record is then handed to the
// schema for validation.
//
// # Usage
//
//	type Config struct {
//	    Port     int    `mapstructure:"port" validate:"min=1"`
//	    Database struct {
//	        Host string `mapstructure:"host" validate:"required"`
//	    } `mapstructure:"database"`
//	}
//
//	cfg, err := config.New(schema.Struct[Config]()).
//	    AddValue(record.Record{"port": 8080}).
//	    AddFile("config.yml", decode.YAML).
//	    EnableEnv().
//	    Load(ctx)
//
// With the default Legacy naming, DATABASE_HOST overrides database.host.
// Use WithEnvConvention(envvar.Revised) for DATABASE__HOST style names.
package config
