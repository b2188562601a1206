package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// TopNgramsInput is the input schema for the top_ngrams tool.
type TopNgramsInput struct {
	Text string `json:"text,omitempty" jsonschema:"inline text to analyse, lines separated by newlines"`
	Path string `json:"path,omitempty" jsonschema:"path of a UTF-8 file to analyse"`
	N    int    `json:"n,omitempty" jsonschema:"n-gram length (default from settings)"`
	K    *int   `json:"k,omitempty" jsonschema:"number of entries to return (default from settings)"`
}

// TopNgramsOutput is the output schema for the top_ngrams tool.
type TopNgramsOutput struct {
	N       int           `json:"n"`
	K       int           `json:"k"`
	Total   int           `json:"total"`
	Entries []EntryOutput `json:"entries"`
}

// EntryOutput is one ranked n-gram.
type EntryOutput struct {
	Ngram             string  `json:"ngram"`
	Count             int     `json:"count"`
	RelativeFrequency float64 `json:"relative_frequency"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_ngrams",
		Description: "Count word n-grams in a text or file and return the most frequent ones",
	}, s.handleTopNgrams)
}

// handleTopNgrams handles the top_ngrams tool invocation.
func (s *Server) handleTopNgrams(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopNgramsInput,
) (*mcp.CallToolResult, TopNgramsOutput, error) {
	query, err := s.buildQuery(input)
	if err != nil {
		return nil, TopNgramsOutput{}, err
	}

	report, err := s.ports.Ngram.Analyse(ctx, query)
	if err != nil {
		return nil, TopNgramsOutput{}, err
	}

	output := TopNgramsOutput{
		N:       report.N,
		K:       report.K,
		Total:   report.Total,
		Entries: make([]EntryOutput, len(report.Entries)),
	}
	for i, e := range report.Entries {
		output.Entries[i] = EntryOutput{
			Ngram:             e.Key,
			Count:             e.Count,
			RelativeFrequency: report.RelativeFrequency(e.Count),
		}
	}

	return nil, output, nil
}

func (s *Server) buildQuery(input TopNgramsInput) (domain.Query, error) {
	var src domain.Source
	switch {
	case input.Text != "" && input.Path != "":
		return domain.Query{}, ErrAmbiguousSource
	case input.Text != "":
		src = domain.TextSource{Text: input.Text}
	case input.Path != "":
		src = domain.FileSource{Path: input.Path}
	default:
		return domain.Query{}, ErrSourceRequired
	}

	defaults := domain.DefaultSettings()
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return domain.Query{}, fmt.Errorf("loading settings: %w", err)
		}
		defaults = *settings
	}

	q := domain.Query{Source: src, N: input.N, K: defaults.Report.K}
	if q.N == 0 {
		q.N = defaults.Ngram.N
	}
	if input.K != nil {
		q.K = *input.K
	}
	return q, nil
}
