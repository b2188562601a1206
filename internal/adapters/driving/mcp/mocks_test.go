package mcp

import (
	"context"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// mockNgramService is a mock implementation of driving.NgramService.
type mockNgramService struct {
	report *domain.Report
	err    error
	query  domain.Query
}

func (m *mockNgramService) Extract(_ context.Context, _ domain.Source, n int) (*domain.Histogram, error) {
	return domain.NewHistogram(n), m.err
}

func (m *mockNgramService) TopK(_ *domain.Histogram, _ int) ([]domain.Entry, error) {
	return nil, m.err
}

func (m *mockNgramService) Analyse(_ context.Context, q domain.Query) (*domain.Report, error) {
	m.query = q
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &domain.Report{N: q.N, K: q.K}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		s := domain.DefaultSettings()
		return &s, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(_ *domain.Settings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) Path() string {
	return "/tmp/wordgrams/config.toml"
}
