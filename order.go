package xmlname

import (
	"slices"
	"strings"
)

// Compare orders two interned names lexicographically by namespace URI, then
// by local name. Ordering is not part of the interning contract; it exists so
// callers can produce deterministic output from name-keyed collections.
func Compare(a, b *Name) int {
	if c := strings.Compare(a.ns.uri, b.ns.uri); c != 0 {
		return c
	}
	return strings.Compare(a.local, b.local)
}

// SortNames sorts names in Compare order.
func SortNames(names []*Name) {
	slices.SortFunc(names, Compare)
}

// SortAndDedupe returns a sorted copy of names with duplicates removed.
// Interned duplicates are the same pointer, so deduplication needs no
// structural comparison.
func SortAndDedupe(names []*Name) []*Name {
	out := slices.Clone(names)
	slices.SortFunc(out, Compare)
	return slices.Compact(out)
}

// SortedMapKeys returns the keys of a name-keyed map in Compare order.
func SortedMapKeys[V any](m map[*Name]V) []*Name {
	keys := make([]*Name, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Compare)
	return keys
}
