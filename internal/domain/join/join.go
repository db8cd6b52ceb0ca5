// Package join cross-references two row sets through normalized keys.
package join

// Outcome is the result of probing one secondary row against an Index.
// Rows with no counterpart come back with Matched == false.
type Outcome[T any] struct {
	Record  T
	Matched bool
}

// Index maps keys to primary rows. Duplicate keys keep the last row.
type Index[P any] struct {
	rows map[string]P
}

// NewIndex indexes primary under key. Rows for which key returns false are
// skipped before indexing.
func NewIndex[P any](primary []P, key func(P) (string, bool)) *Index[P] {
	idx := &Index[P]{rows: make(map[string]P, len(primary))}
	for _, row := range primary {
		k, ok := key(row)
		if !ok {
			continue
		}
		idx.rows[k] = row
	}
	return idx
}

// Lookup returns the primary row stored under k.
func (idx *Index[P]) Lookup(k string) (P, bool) {
	row, ok := idx.rows[k]
	return row, ok
}

// Len returns the number of indexed keys.
func (idx *Index[P]) Len() int {
	return len(idx.rows)
}

// Probe resolves every secondary row against idx. combine builds the joined
// record and may itself reject the pair, which yields an unmatched outcome.
func Probe[P, S, T any](idx *Index[P], secondary []S, key func(S) string, combine func(P, S) (T, bool)) []Outcome[T] {
	out := make([]Outcome[T], 0, len(secondary))
	for _, row := range secondary {
		var o Outcome[T]
		if p, ok := idx.Lookup(key(row)); ok {
			o.Record, o.Matched = combine(p, row)
		}
		out = append(out, o)
	}
	return out
}

// Matched keeps the records of matched outcomes in input order.
func Matched[T any](outcomes []Outcome[T]) []T {
	out := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Matched {
			out = append(out, o.Record)
		}
	}
	return out
}

// Inner is an inner join of primary and secondary: NewIndex, Probe and Matched
// in one call.
func Inner[P, S, T any](
	primary []P, primaryKey func(P) (string, bool),
	secondary []S, secondaryKey func(S) string,
	combine func(P, S) (T, bool),
) []T {
	return Matched(Probe(NewIndex(primary, primaryKey), secondary, secondaryKey, combine))
}
