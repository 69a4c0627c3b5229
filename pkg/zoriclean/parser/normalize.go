// Package parser provides column resolution and name matching for the
// cleaning pipeline.
package parser

import "strings"

// corrections maps known-misspelled normalized city names to their corrected
// normalized form. Applied to caller-supplied names only, never to row
// values. New entries are data edits; the matching logic stays unchanged.
var corrections = map[string]string{
	"san marcoc": "san marcos",
}

// NormalizeCity canonicalizes a city name for comparison: leading and
// trailing whitespace is stripped, internal whitespace runs collapse to a
// single space, and the result is lowercased. The transform is idempotent.
func NormalizeCity(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// TargetSet builds the set of normalized city names to keep. Each supplied
// name is normalized and then run through the misspelling corrections table.
func TargetSet(cities []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cities))
	for _, city := range cities {
		key := NormalizeCity(city)
		if fixed, ok := corrections[key]; ok {
			key = fixed
		}
		set[key] = struct{}{}
	}
	return set
}
