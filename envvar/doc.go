// Package envvar maps schema field paths to environment variable names and
// reads matching variables into a record.
//
// Every leaf path of a schema yields exactly one variable name. Segments are
// upper-cased as a whole, so camel case is collapsed rather than split:
// fooBar and foobar both read FOOBAR. Because paths are flattened, a flat
// field foo_bar and a nested field foo.bar both read FOO_BAR under the Legacy
// convention. Such collisions are not errors: every colliding path receives
// the variable's value.
//
// Two conventions exist and a Resolver uses exactly one:
//
//	Legacy   database.poolSize -> DATABASE_POOLSIZE
//	Revised  database.poolSize -> DATABASE__POOLSIZE
//
// Values are always raw strings; conversion is left to the schema validator.
package envvar
