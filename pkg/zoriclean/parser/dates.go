package parser

// isoDateLength is the byte length of a YYYY-MM-DD column label.
const isoDateLength = 10

// IsISODateLayout reports whether a column label is shaped like an ISO date
// (YYYY-MM-DD): exactly ten bytes with dashes at positions 4 and 7. The
// digits themselves are not validated; non-ISO date labels are an accepted
// limitation.
func IsISODateLayout(s string) bool {
	return len(s) == isoDateLength && s[4] == '-' && s[7] == '-'
}
