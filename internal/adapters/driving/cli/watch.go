package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordgrams/internal/adapters/driving/styles"
	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file> <n> <k>",
	Short: "Re-run the report whenever a file changes",
	Long: `Prints the top k n-grams of a file, then prints them again every time
the file is saved. Stops on Ctrl+C.

Rapid successive writes are coalesced; the minimum delay between two runs
is the watch.interval_ms setting.`,
	Args: cobra.ExactArgs(3),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ngramService == nil || settingsService == nil {
		return errors.New("n-gram service not configured")
	}
	if watcher == nil {
		return errors.New("file watcher not configured")
	}

	query, err := parseQuery(args)
	if err != nil {
		return err
	}
	file, ok := query.Source.(domain.FileSource)
	if !ok {
		return fmt.Errorf("watch needs an existing file, got %q", args[0])
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	opts, err := reportOptions(cmd, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	changes, err := watcher.Watch(ctx, file.Path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", file.Path, err)
	}

	warn := func(err error) {
		msg := fmt.Sprintf("Error: %v", err)
		if opts.Color {
			msg = styles.DefaultStyles().Warning.Render(msg)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}
	run := func() {
		report, err := ngramService.Analyse(ctx, query)
		if err != nil {
			// The file may be mid-rewrite; keep watching.
			warn(err)
			return
		}
		printReport(cmd.OutOrStdout(), report, opts)
		if err := writeCSV(report, opts); err != nil {
			warn(err)
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("%s changed", file.Path)
			run()
		}
	}
}
