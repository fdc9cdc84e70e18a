package envvar

import (
	"fmt"
	"strings"
)

// Convention selects how path segments are joined into a variable name.
type Convention int

const (
	// Legacy joins segments with a single underscore.
	Legacy Convention = iota
	// Revised joins segments with a double underscore.
	Revised
)

// Separator returns the string placed between segments.
func (c Convention) Separator() string {
	if c == Revised {
		return "__"
	}
	return "_"
}

func (c Convention) String() string {
	switch c {
	case Legacy:
		return "legacy"
	case Revised:
		return "revised"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention parses "legacy" or "revised".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "":
		return Legacy, nil
	case "revised":
		return Revised, nil
	default:
		return Legacy, fmt.Errorf("unknown env naming convention %q", s)
	}
}

// Name derives the variable name for path. A non-empty prefix becomes the
// first segment.
func Name(c Convention, prefix string, path []string) string {
	segments := make([]string, 0, len(path)+1)
	if prefix != "" {
		segments = append(segments, prefix)
	}
	segments = append(segments, path...)

	if c == Revised {
		for i, s := range segments {
			segments[i] = strings.ToUpper(s)
		}
		return strings.Join(segments, c.Separator())
	}
	return strings.ToUpper(strings.Join(segments, c.Separator()))
}
