// Command wordgrams reports the most frequent word n-grams of a text.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wordgrams/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordgrams/internal/adapters/driven/report/csvfile"
	"github.com/custodia-labs/wordgrams/internal/adapters/driving/cli"
	"github.com/custodia-labs/wordgrams/internal/connectors/filesystem"
	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/core/services"
)

// configDirEnv overrides the default ~/.wordgrams directory.
const configDirEnv = "WORDGRAMS_CONFIG_DIR"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := file.NewConfigStore(os.Getenv(configDirEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(store)

	interval := domain.DefaultSettings().Watch.Interval
	if settings, err := settingsService.Get(); err == nil {
		interval = settings.Watch.Interval
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}

	cli.SetServices(cli.Services{
		Ngram:    services.NewNgramService(filesystem.New()),
		Settings: settingsService,
		Watcher:  filesystem.NewWatcher(interval),
		NewReportWriter: func(path string, precision int) (driven.ReportWriter, error) {
			return csvfile.New(path, precision)
		},
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
