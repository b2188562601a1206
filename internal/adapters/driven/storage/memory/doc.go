// Package memory provides in-memory implementations of driven ports.
// They hold state for the lifetime of the process and back tests and
// one-off runs that must not touch the user's config directory.
package memory
