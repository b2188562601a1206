package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for wordgrams resources.
	uriScheme = "wordgrams://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Defaults applied when top_ngrams is called without n or k",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

type settingsInfo struct {
	N               int    `json:"n"`
	K               int    `json:"k"`
	Precision       int    `json:"precision"`
	CSVPath         string `json:"csv_path,omitempty"`
	WatchIntervalMS int64  `json:"watch_interval_ms"`
	ConfigPath      string `json:"config_path,omitempty"`
}

// handleSettingsResource returns the effective settings as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultSettings()
	var path string
	if s.ports.Settings != nil {
		stored, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		settings = *stored
		path = s.ports.Settings.Path()
	}

	info := settingsInfo{
		N:               settings.Ngram.N,
		K:               settings.Report.K,
		Precision:       settings.Report.Precision,
		CSVPath:         settings.Report.CSVPath,
		WatchIntervalMS: settings.Watch.Interval.Milliseconds(),
		ConfigPath:      path,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
