package main

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}
