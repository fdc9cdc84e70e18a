package schema

import (
	"context"
	"encoding"
	"fmt"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/confkit/errors"
	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/validation"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	timeType            = reflect.TypeFor[time.Time]()
)

// StructSchema derives its node tree from T and validates records by
// decoding them into T.
type StructSchema[T any] struct {
	root     Node
	defaults *T
	strict   bool
	err      error
}

// StructOption configures a StructSchema.
type StructOption[T any] func(*StructSchema[T])

// WithDefaults fills zero-valued fields of every decoded value from def.
// An explicit zero in the input (0, false, "") is indistinguishable from an
// absent value and is replaced too.
func WithDefaults[T any](def T) StructOption[T] {
	return func(s *StructSchema[T]) { s.defaults = &def }
}

// Strict rejects input keys that map to no field of T.
func Strict[T any]() StructOption[T] {
	return func(s *StructSchema[T]) { s.strict = true }
}

// Struct returns a schema for the struct type T.
func Struct[T any](opts ...StructOption[T]) *StructSchema[T] {
	s := &StructSchema[T]{}
	t := reflect.TypeFor[T]()
	if !isObjectType(t) {
		s.root = Leaf()
		s.err = errors.InvalidSchema(fmt.Sprintf("schema type %s is not a struct", t))
	} else {
		s.root = FromType(t)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Children returns the fields of T.
func (s *StructSchema[T]) Children() map[string]Node {
	return s.root.Children()
}

// Validate decodes in into T, applies defaults and checks `validate` tags.
func (s *StructSchema[T]) Validate(ctx context.Context, in record.Record) (T, error) {
	var out, zero T
	if s.err != nil {
		return zero, s.err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Squash:           true,
		Metadata:         &md,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return zero, errors.InvalidSchema(err.Error())
	}

	c := validation.NewCollector()
	if err := dec.Decode(in); err != nil {
		addDecodeIssues(c, err)
		return zero, c.Err()
	}
	if s.strict {
		for _, key := range md.Unused {
			c.Add(validation.ParsePath(key), validation.CodeUnrecognizedKeys, "is not a known setting")
		}
		if err := c.Err(); err != nil {
			return zero, err
		}
	}

	if s.defaults != nil {
		if err := mergo.Merge(&out, *s.defaults); err != nil {
			return zero, errors.InvalidSchema(fmt.Sprintf("apply defaults: %v", err))
		}
	}

	if err := validation.Struct(out); err != nil {
		return zero, err
	}
	return out, nil
}

// addDecodeIssues reports one invalid_type issue per field the decoder
// rejected. Errors without a field name land at the root.
func addDecodeIssues(c *validation.Collector, err error) {
	var found bool
	var visit func(error)
	visit = func(err error) {
		if de, ok := err.(*mapstructure.DecodeError); ok {
			found = true
			msg := err.Error()
			if inner := de.Unwrap(); inner != nil {
				msg = inner.Error()
			}
			c.Add(validation.ParsePath(de.Name()), validation.CodeInvalidType, msg)
			return
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				visit(e)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				visit(inner)
			}
		}
	}
	visit(err)
	if !found {
		c.Add(nil, validation.CodeInvalidType, err.Error())
	}
}

// FromType builds a node tree from a Go type. Structs become objects keyed
// by their mapstructure names; embedded structs and fields tagged ",squash"
// are flattened into their parent. Every other type is a leaf.
func FromType(t reflect.Type) Node {
	t = deref(t)
	if !isObjectType(t) {
		return Leaf()
	}
	children := make(map[string]Node)
	addFields(t, children)
	return Object(children)
}

func addFields(t reflect.Type, children map[string]Node) {
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := validation.FieldName(f)
		if name == "-" {
			continue
		}
		ft := deref(f.Type)
		if validation.Squashed(f) && isObjectType(ft) {
			addFields(ft, children)
			continue
		}
		children[name] = FromType(ft)
	}
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func isObjectType(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}
	return !reflect.PointerTo(t).Implements(textUnmarshalerType)
}
