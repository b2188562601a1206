package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wordgrams/internal/adapters/driving/styles"
	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

// renderOptions controls how a report is printed and persisted.
type renderOptions struct {
	Precision int
	Color     bool
	CSVPath   string
}

// reportOptions merges settings with the flags given on cmd.
// Flags win over settings.
func reportOptions(cmd *cobra.Command, settings *domain.Settings) (renderOptions, error) {
	opts := renderOptions{
		Precision: settings.Report.Precision,
		Color:     settings.Report.Color && !noColor && isTerminal(cmd.OutOrStdout()),
		CSVPath:   settings.Report.CSVPath,
	}

	if flag := cmd.Flags().Lookup("precision"); flag != nil && flag.Changed {
		if precision < 0 || precision > domain.MaxPrecision {
			return opts, fmt.Errorf("precision must be between 0 and %d, got %d: %w",
				domain.MaxPrecision, precision, domain.ErrInvalidInput)
		}
		opts.Precision = precision
	}
	if flag := cmd.Flags().Lookup("csv"); flag != nil && flag.Changed {
		opts.CSVPath = csvPath
	}
	return opts, nil
}

// printReport writes the report in the console format:
//
//	(blank line)
//	The top {k} word {n}-grams and their frequencies (absolute and relative) are as follows.
//	(blank line)
//		{key} {count} ({relative})
//	(two blank lines)
func printReport(w io.Writer, report *domain.Report, opts renderOptions) {
	header := fmt.Sprintf(
		"The top %d word %d-grams and their frequencies (absolute and relative) are as follows.",
		report.K, report.N)

	var st *styles.Styles
	if opts.Color {
		st = styles.DefaultStyles()
		header = st.Title.Render(header)
	}
	fmt.Fprintf(w, "\n%s\n\n", header)

	for _, e := range report.Entries {
		key := e.Key
		rel := "(" + domain.FormatFrequency(report.RelativeFrequency(e.Count), opts.Precision) + ")"
		if st != nil {
			key = st.Key.Render(key)
			rel = st.Muted.Render(rel)
		}
		fmt.Fprintf(w, "\t%s %d %s\n", key, e.Count, rel)
	}

	fmt.Fprint(w, "\n\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
