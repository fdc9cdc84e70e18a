package validation

import (
	"reflect"
	"strings"
)

// ParsePath splits a dotted field name with optional index suffixes into
// path segments: "servers[1].host" becomes ["servers", "1", "host"].
func ParsePath(name string) []string {
	if name == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.Split(name, ".") {
		field, idx := splitIndex(seg)
		if field != "" {
			out = append(out, field)
		}
		out = append(out, idx...)
	}
	return out
}

// Squashed reports whether a field's children live at its parent's level:
// embedded fields and fields tagged ",squash".
func Squashed(fld reflect.StructField) bool {
	if fld.Anonymous {
		return true
	}
	opts := strings.Split(fld.Tag.Get("mapstructure"), ",")
	for _, opt := range opts[1:] {
		if opt == "squash" {
			return true
		}
	}
	return false
}

// splitIndex separates "hosts[0][k]" into "hosts" and ["0", "k"].
func splitIndex(seg string) (string, []string) {
	i := strings.IndexByte(seg, '[')
	if i < 0 {
		return seg, nil
	}
	field := seg[:i]
	var idx []string
	for rest := seg[i:]; strings.HasPrefix(rest, "["); {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		idx = append(idx, rest[1:end])
		rest = rest[end+1:]
	}
	return field, idx
}

// fieldPath maps a validator struct namespace ("Config.Base.Name") to the
// configuration path of the field, using the same keys the decoder reads.
// Segments of squashed fields are dropped. The boolean is false when the
// namespace runs through a field tagged mapstructure:"-".
func fieldPath(root reflect.Type, ns string) ([]string, bool) {
	segs := strings.Split(ns, ".")
	if len(segs) <= 1 {
		return nil, true
	}

	t := root
	var path []string
	for _, seg := range segs[1:] {
		name, idx := splitIndex(seg)
		t = deref(t)
		if t == nil || t.Kind() != reflect.Struct {
			path = append(path, name)
			path = append(path, idx...)
			t = nil
			continue
		}
		fld, ok := t.FieldByName(name)
		if !ok {
			path = append(path, name)
			path = append(path, idx...)
			t = nil
			continue
		}

		switch key := FieldName(fld); {
		case key == "-":
			return nil, false
		case !Squashed(fld):
			path = append(path, key)
		}
		path = append(path, idx...)

		t = fld.Type
		for range idx {
			t = elem(t)
		}
	}
	return path, true
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func elem(t reflect.Type) reflect.Type {
	t = deref(t)
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return t.Elem()
	default:
		return nil
	}
}
