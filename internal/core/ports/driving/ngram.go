package driving

import (
	"context"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// NgramService computes n-gram frequency statistics.
type NgramService interface {
	// Extract counts every n-gram of length n in the source.
	Extract(ctx context.Context, src domain.Source, n int) (*domain.Histogram, error)

	// TopK returns the k most frequent entries, highest count first.
	// Ties keep the order in which keys first appeared in the source.
	TopK(h *domain.Histogram, k int) ([]domain.Entry, error)

	// Analyse runs Extract and TopK and assembles a report.
	Analyse(ctx context.Context, q domain.Query) (*domain.Report, error)
}
