// Package tally counts records along one or two dimensions.
package tally

// Entry is the number of records sharing Key.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Group holds the second-level entries of one first-level key.
type Group struct {
	Key     string  `json:"key"`
	Entries []Entry `json:"entries"`
}

// Count groups records by dim. Entries come back in first-seen order.
func Count[T any](records []T, dim func(T) string) []Entry {
	out := make([]Entry, 0)
	pos := make(map[string]int)
	for _, r := range records {
		k := dim(r)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, Entry{Key: k})
		}
		out[i].Count++
	}
	return out
}

// Nested groups records by dim1 and then, within each group, by dim2. Both
// levels keep first-seen order.
func Nested[T any](records []T, dim1, dim2 func(T) string) []Group {
	out := make([]Group, 0)
	groups := make(map[string]int)
	inner := make([]map[string]int, 0)
	for _, r := range records {
		k1 := dim1(r)
		g, ok := groups[k1]
		if !ok {
			g = len(out)
			groups[k1] = g
			out = append(out, Group{Key: k1, Entries: make([]Entry, 0)})
			inner = append(inner, make(map[string]int))
		}
		k2 := dim2(r)
		e, ok := inner[g][k2]
		if !ok {
			e = len(out[g].Entries)
			inner[g][k2] = e
			out[g].Entries = append(out[g].Entries, Entry{Key: k2})
		}
		out[g].Entries[e].Count++
	}
	return out
}

// Map flattens entries into a key to count mapping.
func Map(entries []Entry) map[string]int {
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Count
	}
	return out
}
