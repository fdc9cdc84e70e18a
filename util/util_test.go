package util

import (
	"slices"
	"testing"
	"unicode/utf8"
)

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"b": 2, "a": 1, "c": 3})
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", got)
	}
	if got := SortedKeys(map[string]int(nil)); len(got) != 0 {
		t.Errorf("expected no keys for nil map, got %v", got)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input  string
		prefix int
		want   string
	}{
		{"supersecret", 3, "sup***"},
		{"abc", 3, "***"},
		{"", 2, "***"},
		{"token", 0, "***"},
		{"ünïcode", 2, "ün***"},
		{"日本語の秘密", 3, "日本語***"},
		{"日本", 2, "***"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := MaskSecret(tc.input, tc.prefix)
			if got != tc.want {
				t.Errorf("MaskSecret(%q, %d) = %q, want %q", tc.input, tc.prefix, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("MaskSecret(%q, %d) produced invalid UTF-8", tc.input, tc.prefix)
			}
		})
	}
}
