package schema

import (
	"context"

	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/validation"
)

// Check inspects a merged record and reports problems to c.
type Check func(in record.Record, c *validation.Collector)

// DynamicSchema validates records against a hand-built tree and returns the
// merged record itself.
type DynamicSchema struct {
	Node
	checks []Check
}

// Dynamic returns a schema over root that runs checks during validation.
func Dynamic(root Node, checks ...Check) *DynamicSchema {
	return &DynamicSchema{Node: root, checks: checks}
}

// Require returns a check that fails for every path absent from the record.
func Require(paths ...[]string) Check {
	return func(in record.Record, c *validation.Collector) {
		for _, p := range paths {
			c.Required(in, p)
		}
	}
}

// Validate runs every check against in.
func (d *DynamicSchema) Validate(ctx context.Context, in record.Record) (record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := validation.NewCollector()
	for _, check := range d.checks {
		check(in, c)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return in, nil
}
