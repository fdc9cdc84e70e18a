package record

// Record is a nested, string-keyed configuration map.
//
// It is an alias so that values produced by decoders (map[string]any) are
// records without conversion.
type Record = map[string]any

// Merge deep-merges records left to right into a new Record.
//
// When both the accumulated output and the current record hold a Record at
// the same key, the two are merged recursively. Any other value, including
// arrays and values of a different kind, replaces what was accumulated.
// Inputs are never mutated.
func Merge(records ...Record) Record {
	out := make(Record)
	for _, r := range records {
		for k, v := range r {
			src, ok := v.(Record)
			if !ok {
				out[k] = v
				continue
			}
			if dst, ok := out[k].(Record); ok {
				out[k] = Merge(dst, src)
			} else {
				out[k] = Merge(src)
			}
		}
	}
	return out
}

// From reports whether v is record-shaped and returns it as a Record.
// A nil map is treated as an empty record.
func From(v any) (Record, bool) {
	r, ok := v.(Record)
	if !ok {
		return nil, false
	}
	if r == nil {
		return Record{}, true
	}
	return r, true
}

// Set writes v at path, creating intermediate records as needed.
// A non-record value found on the way is replaced by a new record.
func Set(r Record, path []string, v any) {
	if len(path) == 0 {
		return
	}
	cur := r
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(Record)
		if !ok {
			next = make(Record)
			cur[key] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = v
}

// Get returns the value stored at path.
func Get(r Record, path []string) (any, bool) {
	if len(path) == 0 {
		return r, true
	}
	var cur any = r
	for _, key := range path {
		m, ok := cur.(Record)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
