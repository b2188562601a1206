// Package csvfile writes reports to a CSV file on the local filesystem.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// Header is the first row of every CSV report.
var Header = []string{"ngram", "count", "relative_frequency"}

// Writer writes reports as CSV, replacing the target file atomically.
type Writer struct {
	path      string
	precision int
}

// New creates a CSV writer for path. Relative frequencies are rounded
// to precision decimal places.
func New(path string, precision int) (*Writer, error) {
	if path == "" {
		return nil, fmt.Errorf("csv path is required: %w", domain.ErrInvalidInput)
	}
	if precision < 0 || precision > domain.MaxPrecision {
		return nil, fmt.Errorf("precision %d: %w", precision, domain.ErrInvalidInput)
	}
	return &Writer{path: path, precision: precision}, nil
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

// Write stores report at the writer path. The report is first written to
// a temporary file in the same directory and then renamed over the target.
func (w *Writer) Write(report *domain.Report) (err error) {
	if report == nil {
		return fmt.Errorf("report is required: %w", domain.ErrInvalidInput)
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".wordgrams-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := w.encode(tmp, report); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		return fmt.Errorf("replacing %s: %w", w.path, err)
	}

	logger.Debug("Wrote %d rows to %s", len(report.Entries), w.path)
	return nil
}

func (w *Writer) encode(f *os.File, report *domain.Report) error {
	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range report.Entries {
		row := []string{
			e.Key,
			strconv.Itoa(e.Count),
			domain.FormatFrequency(report.RelativeFrequency(e.Count), w.precision),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
