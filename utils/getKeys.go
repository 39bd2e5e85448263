package utils

import (
	"maps"
	"slices"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}
