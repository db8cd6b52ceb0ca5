// Package ranking narrows tallies to their largest keys.
package ranking

import (
	"sort"

	"github.com/okian/podium/internal/domain/tally"
)

// TopK returns the keys of the k largest entries, largest first. Ties keep
// their input order. The input is not modified. k <= 0 yields no keys.
func TopK(entries []tally.Entry, k int) []string {
	if k <= 0 {
		return []string{}
	}
	sorted := make([]tally.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	keys := make([]string, k)
	for i := range keys {
		keys[i] = sorted[i].Key
	}
	return keys
}

// Set is a membership view over a top-K key list.
type Set map[string]struct{}

// NewSet builds a Set from keys.
func NewSet(keys []string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set.
func (s Set) Has(k string) bool {
	_, ok := s[k]
	return ok
}

// Both keeps records whose first dimension is in s1 and whose second
// dimension is in s2.
func Both[T any](records []T, dim1 func(T) string, s1 Set, dim2 func(T) string, s2 Set) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if s1.Has(dim1(r)) && s2.Has(dim2(r)) {
			out = append(out, r)
		}
	}
	return out
}
