// Package cli implements the wordgrams command line on top of cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordgrams/internal/connectors/filesystem"
	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driving"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services holds the ports the commands run against.
type Services struct {
	// Ngram runs the extraction pipeline. Required.
	Ngram driving.NgramService

	// Settings provides user defaults. Required.
	Settings driving.SettingsService

	// Watcher signals file changes for the watch command. Optional.
	Watcher driven.Watcher

	// NewReportWriter builds the CSV writer used by --csv. Optional.
	NewReportWriter func(path string, precision int) (driven.ReportWriter, error)
}

var (
	ngramService    driving.NgramService
	settingsService driving.SettingsService
	watcher         driven.Watcher
	newReportWriter func(path string, precision int) (driven.ReportWriter, error)
)

var (
	verbose   bool
	csvPath   string
	precision int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "wordgrams <input source> <n> <k>",
	Short: "Report the most frequent word n-grams in a text",
	Long: `Counts every sequence of n consecutive words in a text and prints the
k most frequent ones with absolute and relative frequencies.

<input source> is read as a file if such a path exists, otherwise the
argument itself is the text. Lines are split on single spaces; words are
lowercased and stripped of surrounding punctuation. N-grams never span
two lines.

Text starting with "-" would be read as a flag; put "--" before the
positional arguments to pass it through unchanged.

Examples:
  wordgrams corpus.txt 2 10
  wordgrams "the cat sat on the mat" 1 3
  wordgrams corpus.txt 3 20 --csv output.csv
  wordgrams --precision 2 -- "-- a quoted aside --" 1 5`,
	Args:          exactArgs,
	RunE:          runAnalyse,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "also write the report to this CSV file")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", -1, "decimal places for relative frequencies (default from settings)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// SetServices wires the ports used by all commands.
func SetServices(s Services) {
	ngramService = s.Ngram
	settingsService = s.Settings
	watcher = s.Watcher
	newReportWriter = s.NewReportWriter
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// exactArgs rejects any call that does not give exactly the three
// positional arguments, naming their expected order.
func exactArgs(_ *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf(
			"expected 3 arguments in order: <input source> <n> <k>, got %d", len(args))
	}
	return nil
}

// parseQuery converts the positional arguments into a query. Numbers are
// validated here so that no work starts on bad input.
func parseQuery(args []string) (domain.Query, error) {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.Query{}, fmt.Errorf("n must be an integer, got %q: %w", args[1], domain.ErrInvalidInput)
	}
	if n < 1 {
		return domain.Query{}, fmt.Errorf("n must be positive, got %d: %w", n, domain.ErrInvalidInput)
	}

	k, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.Query{}, fmt.Errorf("k must be an integer, got %q: %w", args[2], domain.ErrInvalidInput)
	}
	if k < 0 {
		return domain.Query{}, fmt.Errorf("k must not be negative, got %d: %w", k, domain.ErrInvalidInput)
	}

	return domain.Query{
		Source: filesystem.Resolve(args[0]),
		N:      n,
		K:      k,
	}, nil
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	if ngramService == nil || settingsService == nil {
		return errors.New("n-gram service not configured")
	}

	query, err := parseQuery(args)
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	opts, err := reportOptions(cmd, settings)
	if err != nil {
		return err
	}

	report, err := ngramService.Analyse(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printReport(cmd.OutOrStdout(), report, opts)

	return writeCSV(report, opts)
}

func writeCSV(report *domain.Report, opts renderOptions) error {
	if opts.CSVPath == "" {
		return nil
	}
	if newReportWriter == nil {
		return errors.New("csv output not configured")
	}

	w, err := newReportWriter(opts.CSVPath, opts.Precision)
	if err != nil {
		return fmt.Errorf("failed to create csv writer: %w", err)
	}
	if err := w.Write(report); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	logger.Info("Report written to %s", opts.CSVPath)
	return nil
}
