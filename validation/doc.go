// Package validation defines the structured validation error confkit reports
// and the struct-tag validation backing struct schemas.
//
// Every violation is an Issue with a field path, a classification code and a
// human-readable message. Struct tag validation uses the go-playground
// validator; paths follow the mapstructure field names so they line up with
// configuration keys.
//
// # Struct Tag Validation
//
//	type Database struct {
//	    Host string `mapstructure:"host" validate:"required"`
//	    Port int    `mapstructure:"port" validate:"min=1,max=65535"`
//	}
//	err := validation.Struct(cfg)
//
// # Programmatic Validation
//
//	c := validation.NewCollector()
//	c.Check(port > 0, []string{"database", "port"}, "min", "must be positive")
//	err := c.Err()
package validation
