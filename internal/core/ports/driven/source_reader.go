package driven

import (
	"context"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// SourceReader acquires the lines of a text source.
type SourceReader interface {
	// ReadLines returns the source split on newlines, in order, with empty
	// lines removed. A FileSource must be valid UTF-8.
	ReadLines(ctx context.Context, src domain.Source) ([]string, error)
}
