package domain

import (
	"strconv"
	"strings"
)

// Query describes one analysis: which source, which n-gram length and
// how many top entries to report.
type Query struct {
	Source Source
	N      int
	K      int
}

// Report is the result of an analysis.
type Report struct {
	// N is the n-gram length.
	N int

	// K is the number of entries requested. Entries may be shorter.
	K int

	// Total is the total number of n-grams counted in the source.
	Total int

	// Distinct is the number of distinct n-gram keys.
	Distinct int

	// Entries holds the top-k n-grams, highest count first.
	Entries []Entry
}

// RelativeFrequency returns count divided by the report total.
// A zero total yields 0 rather than a division by zero.
func (r *Report) RelativeFrequency(count int) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(count) / float64(r.Total)
}

// IsEmpty returns true if the source produced no n-grams.
func (r *Report) IsEmpty() bool {
	return r.Total == 0
}

// FormatFrequency rounds f to precision decimal places and prints the
// shortest form that keeps at least one fractional digit: 0.333, 0.5, 1.0.
// Rounding is done on the exact binary value of f, so 0.0005 (stored
// slightly above the tie) rounds up to 0.001.
func FormatFrequency(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if !strings.ContainsRune(s, '.') {
		return s + ".0"
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
