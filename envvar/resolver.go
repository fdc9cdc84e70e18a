package envvar

import (
	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/schema"
)

// Binding pairs a schema leaf path with the variable that feeds it.
type Binding struct {
	Path []string
	Name string
}

// Resolver reads the variables declared by a schema.
type Resolver struct {
	Convention Convention
	Prefix     string
	Lookup     Lookup
}

// NewResolver returns a Resolver over the process environment using the
// Legacy convention.
func NewResolver() *Resolver {
	return &Resolver{Convention: Legacy, Lookup: OS{}}
}

// Bindings lists every leaf path of node with its variable name, in path order.
func (r *Resolver) Bindings(node schema.Node) []Binding {
	var out []Binding
	schema.Walk(node, func(path []string) {
		out = append(out, Binding{
			Path: append([]string(nil), path...),
			Name: Name(r.Convention, r.Prefix, path),
		})
	})
	return out
}

// Resolve returns a record holding every set variable at its schema path.
// Unset variables leave their path absent.
func (r *Resolver) Resolve(node schema.Node) record.Record {
	out, _ := r.ResolveBindings(node)
	return out
}

// ResolveBindings is Resolve that also reports which bindings were found.
func (r *Resolver) ResolveBindings(node schema.Node) (record.Record, []Binding) {
	lookup := r.Lookup
	if lookup == nil {
		lookup = OS{}
	}

	out := make(record.Record)
	var hits []Binding
	for _, b := range r.Bindings(node) {
		v, ok := lookup.LookupEnv(b.Name)
		if !ok {
			continue
		}
		record.Set(out, b.Path, v)
		hits = append(hits, b)
	}
	return out, hits
}
