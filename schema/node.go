package schema

import (
	"context"
	"maps"

	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/util"
)

// Node is a schema tree node. Children returns the named children of an
// object node and nil or an empty map for a leaf.
type Node interface {
	Children() map[string]Node
}

// Validator turns a merged record into a typed value or a validation error.
type Validator[T any] interface {
	Validate(ctx context.Context, in record.Record) (T, error)
}

// Schema is a node tree that can also validate records.
type Schema[T any] interface {
	Node
	Validator[T]
}

type object map[string]Node

func (o object) Children() map[string]Node { return o }

type leaf struct{}

func (leaf) Children() map[string]Node { return nil }

// Object returns an object node with the given children.
func Object(children map[string]Node) Node {
	return object(maps.Clone(children))
}

// Leaf returns a leaf node.
func Leaf() Node {
	return leaf{}
}

// IsObject reports whether n has named children.
func IsObject(n Node) bool {
	return n != nil && len(n.Children()) > 0
}

// Walk calls fn with the path of every leaf under n, depth first, visiting
// children in key order. The path slice must not be retained.
func Walk(n Node, fn func(path []string)) {
	walk(n, nil, fn)
}

func walk(n Node, path []string, fn func([]string)) {
	if !IsObject(n) {
		if len(path) > 0 {
			fn(path)
		}
		return
	}
	children := n.Children()
	for _, name := range util.SortedKeys(children) {
		walk(children[name], append(path, name), fn)
	}
}

// Paths returns the paths of all leaves under n.
func Paths(n Node) [][]string {
	var out [][]string
	Walk(n, func(path []string) {
		out = append(out, append([]string(nil), path...))
	})
	return out
}
