package util

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MaskSecret hides sensitive parts of a string for safe display in logs.
// visiblePrefix counts characters, not bytes. If the string is not longer
// than visiblePrefix, it is fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	runes := []rune(s)
	if len(runes) <= visiblePrefix {
		return "***"
	}
	return string(runes[:visiblePrefix]) + "***"
}
