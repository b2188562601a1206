package mcp

import (
	"github.com/custodia-labs/wordgrams/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Ngram runs the extraction pipeline.
	Ngram driving.NgramService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ngram == nil {
		return ErrMissingNgramService
	}
	return nil
}
