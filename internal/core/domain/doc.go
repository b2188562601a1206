// Package domain defines the core entities of wordgrams.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: where text comes from (a file or an inline string)
//   - Histogram: n-gram keys and their occurrence counts
//   - Entry: one ranked (key, count) pair
//   - Report: the top-k entries of a histogram with relative frequencies
//   - Settings: user defaults persisted by the config store
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
