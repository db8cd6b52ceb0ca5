package source

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical column names.
const (
	ColName        = "name"
	ColCountry     = "country"
	ColCountryLong = "country_long"
	ColDiscipline  = "discipline"
	ColMedalType   = "medal_type"
)

// CanonicalHeader turns a header cell into a lowercase snake_case identifier:
// the BOM is dropped, accents are stripped, and runs of space, dash or dot
// become one underscore. Other punctuation is removed.
func CanonicalHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	sep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
		case r == '_' || r == ' ' || r == '-' || r == '.':
			sep = true
		}
	}
	return b.String()
}

// columns maps canonical column names to positions in a record.
type columns map[string]int

func newColumns(header []string, aliases map[string]string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		name := CanonicalHeader(h)
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

// get returns the trimmed field for name, or "" when the column or the field
// is absent.
func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
