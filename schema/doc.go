// Package schema describes the shape of a configuration and validates
// merged input against it.
//
// A schema is a tree of Nodes. Object nodes return their named children from
// Children; leaves return none. The environment resolver walks this tree to
// derive variable names, and the loader hands the merged record to the
// schema's Validator.
//
// Struct derives both from a Go struct: children come from mapstructure tags,
// the record is decoded with weak typing (so "8080" from the environment
// becomes an int) and then checked with `validate` tags.
//
//	type Config struct {
//	    Database struct {
//	        Host string `mapstructure:"host" validate:"required"`
//	        Port int    `mapstructure:"port" validate:"min=1"`
//	    } `mapstructure:"database"`
//	}
//
//	s := schema.Struct[Config]()
//
// Dynamic wraps a hand-built tree when no struct exists.
package schema
