package driven

import "github.com/custodia-labs/wordgrams/internal/core/domain"

// ReportWriter persists a report outside the console.
type ReportWriter interface {
	// Write stores the report, replacing any previous output.
	Write(report *domain.Report) error
}
