// Package names builds comparable join keys from free-text personal names.
package names

import "strings"

// Normalize returns the join key for name. Only the first two whitespace
// separated tokens are kept. When reversed is true the source order is
// "last first" and the tokens are swapped so both orders meet at "first last".
//
// A single-token name yields that token lowercased, so two different people
// known by one name collide on the same key.
func Normalize(name string, reversed bool) string {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return strings.ToLower(tokens[0])
	}
	first, second := tokens[0], tokens[1]
	if reversed {
		first, second = second, first
	}
	return strings.ToLower(first + " " + second)
}

// Keyer returns a key function bound to a table's name order.
func Keyer(reversed bool) func(string) string {
	return func(name string) string {
		return Normalize(name, reversed)
	}
}
