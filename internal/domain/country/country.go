// Package country resolves inconsistent country and team labels to
// canonical country names.
package country

// Aliaser maps raw labels to canonical names. It is immutable after New and
// safe for concurrent use.
type Aliaser struct {
	table map[string]string
}

// New builds an Aliaser from the built-in table overlaid with extra. Entries
// in extra win over built-in ones. Neither map is retained.
func New(extra map[string]string) *Aliaser {
	table := make(map[string]string, len(builtin)+len(extra))
	for raw, canonical := range builtin {
		table[raw] = canonical
	}
	for raw, canonical := range extra {
		if raw == "" || canonical == "" {
			continue
		}
		table[raw] = canonical
	}
	return &Aliaser{table: table}
}

// Canonicalize picks long over primary when both are present, then resolves
// the chosen label through the alias table. Unmapped labels pass through
// unchanged. ok is false when neither label is present and the caller
// must skip the record.
//
// Labels are matched exactly; case and whitespace are not normalised.
func (a *Aliaser) Canonicalize(primary, long string) (name string, ok bool) {
	raw := long
	if raw == "" {
		raw = primary
	}
	if raw == "" {
		return "", false
	}
	if canonical, found := a.table[raw]; found {
		return canonical, true
	}
	return raw, true
}

// Len returns the number of aliases.
func (a *Aliaser) Len() int {
	return len(a.table)
}
