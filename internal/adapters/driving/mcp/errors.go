// Package mcp provides an MCP (Model Context Protocol) server adapter for wordgrams.
// It lets AI assistants ask for the most frequent n-grams of a text or file.
package mcp

import "errors"

// ErrMissingNgramService is returned when the n-gram service is not provided.
var ErrMissingNgramService = errors.New("mcp: ngram service is required")

// ErrSourceRequired is returned when a tool call names neither text nor path.
var ErrSourceRequired = errors.New("mcp: one of text or path is required")

// ErrAmbiguousSource is returned when a tool call names both text and path.
var ErrAmbiguousSource = errors.New("mcp: text and path are mutually exclusive")
