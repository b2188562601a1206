package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driving"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

// Ensure NgramService implements the interface.
var _ driving.NgramService = (*NgramService)(nil)

// NgramService extracts, counts and ranks word n-grams.
type NgramService struct {
	reader driven.SourceReader
}

// NewNgramService creates a new n-gram service reading sources through reader.
func NewNgramService(reader driven.SourceReader) *NgramService {
	return &NgramService{reader: reader}
}

// Extract counts every n-gram of length n in the source.
// A source with no line of at least n tokens yields an empty histogram.
func (s *NgramService) Extract(ctx context.Context, src domain.Source, n int) (*domain.Histogram, error) {
	if n < 1 {
		return nil, fmt.Errorf("n-gram length must be positive, got %d: %w", n, domain.ErrInvalidInput)
	}
	if src == nil {
		return nil, fmt.Errorf("source is required: %w", domain.ErrInvalidInput)
	}

	logger.Section("N-gram Extraction")
	logger.Debug("Source: %s", src.Describe())
	logger.Debug("N: %d", n)

	lines, err := s.reader.ReadLines(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.Describe(), err)
	}
	logger.Debug("Non-empty lines: %d", len(lines))

	h := CountNgrams(lines, n)
	logger.Debug("Distinct n-grams: %d, total: %d", h.Len(), h.Total())
	if h.IsEmpty() {
		logger.Info("No line has %d or more tokens", n)
	}

	return h, nil
}

// TopK returns the k most frequent entries of h, highest count first.
// Entries with equal counts keep the order in which their keys first
// appeared in the source. A k larger than the number of distinct keys
// returns every entry.
func (s *NgramService) TopK(h *domain.Histogram, k int) ([]domain.Entry, error) {
	if k < 0 {
		return nil, fmt.Errorf("k must not be negative, got %d: %w", k, domain.ErrInvalidInput)
	}
	if h == nil {
		return []domain.Entry{}, nil
	}

	entries := h.Entries()
	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if k < len(entries) {
		entries = entries[:k]
	}
	return entries, nil
}

// Analyse runs extraction and selection for q and assembles a report.
// Both n and k are validated before the source is read.
func (s *NgramService) Analyse(ctx context.Context, q domain.Query) (*domain.Report, error) {
	if q.K < 0 {
		return nil, fmt.Errorf("k must not be negative, got %d: %w", q.K, domain.ErrInvalidInput)
	}

	h, err := s.Extract(ctx, q.Source, q.N)
	if err != nil {
		return nil, err
	}

	entries, err := s.TopK(h, q.K)
	if err != nil {
		return nil, err
	}

	logger.Section("Ranking")
	logger.Debug("Requested k: %d, returned: %d", q.K, len(entries))

	return &domain.Report{
		N:        q.N,
		K:        q.K,
		Total:    h.Total(),
		Distinct: h.Len(),
		Entries:  entries,
	}, nil
}
