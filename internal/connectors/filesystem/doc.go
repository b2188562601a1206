// Package filesystem reads text sources from the local filesystem or from
// inline strings, and resolves command-line arguments into sources.
package filesystem
