package common

import (
	"cmp"
	"slices"
)

// Coalesce returns the first value that is not the zero value of T, or the zero value when
// every value is zero. Builders use it to fall back to package defaults.
//
// Parameters:
//   - values: the candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// SortedKeys returns the keys of m in ascending order.
//
// Parameters:
//   - m: the map to read
//
// Returns:
//   - []K: the sorted keys
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
