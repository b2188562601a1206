package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default settings",
	Long: `View and change the defaults wordgrams falls back to.

Settings live in a TOML file (see "wordgrams config path"). Keys:
  ngram.n            default n-gram length for MCP calls
  report.k           default number of entries for MCP calls
  report.precision   decimal places of relative frequencies (0-12)
  report.csv_path    write every report to this CSV file ("" disables)
  report.color       style output on terminals (true/false)
  watch.interval_ms  minimum delay between two watch re-runs`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[ngram]")
	cmd.Printf("  n = %d\n", settings.Ngram.N)
	cmd.Println()

	cmd.Println("[report]")
	cmd.Printf("  k = %d\n", settings.Report.K)
	cmd.Printf("  precision = %d\n", settings.Report.Precision)
	if settings.Report.CSVPath != "" {
		cmd.Printf("  csv_path = %s\n", settings.Report.CSVPath)
	} else {
		cmd.Println("  csv_path = (not set)")
	}
	cmd.Printf("  color = %t\n", settings.Report.Color)
	cmd.Println()

	cmd.Println("[watch]")
	cmd.Printf("  interval_ms = %d\n", settings.Watch.Interval.Milliseconds())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (known keys: %v)", err, settingsService.Keys())
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
