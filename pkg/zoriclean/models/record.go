// Package models defines data structures for the cleaning pipeline.
package models

// Record represents a single data row aligned positionally to the input
// header. Input data may be ragged, so a Record can be shorter than the
// header it belongs to.
type Record []string

// Field returns the value at column index i, or the empty string when the
// record has no cell at that position.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}
