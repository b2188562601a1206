package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordgrams/internal/adapters/driven/report/csvfile"
	"github.com/custodia-labs/wordgrams/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordgrams/internal/connectors/filesystem"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/core/services"
)

// fakeWatcher hands out a channel the test drives.
type fakeWatcher struct {
	changes chan struct{}
	err     error
	path    string
}

func (w *fakeWatcher) Watch(_ context.Context, path string) (<-chan struct{}, error) {
	w.path = path
	if w.err != nil {
		return nil, w.err
	}
	return w.changes, nil
}

// setupTestServices wires real services over an in-memory config store.
// The returned cleanup restores the previous wiring and flag values.
func setupTestServices(w driven.Watcher) (*memory.ConfigStore, func()) {
	oldNgram, oldSettings, oldWatcher, oldWriter := ngramService, settingsService, watcher, newReportWriter

	store := memory.NewConfigStore(nil)
	SetServices(Services{
		Ngram:    services.NewNgramService(filesystem.New()),
		Settings: services.NewSettingsService(store),
		Watcher:  w,
		NewReportWriter: func(path string, precision int) (driven.ReportWriter, error) {
			return csvfile.New(path, precision)
		},
	})

	return store, func() {
		ngramService, settingsService, watcher, newReportWriter = oldNgram, oldSettings, oldWatcher, oldWriter
		resetCommands()
	}
}

// resetCommands clears state cobra keeps between executions.
func resetCommands() {
	for _, fs := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags(), mcpServeCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	rootCmd.SetArgs(nil)
	rootCmd.SetContext(context.Background())
	watchCmd.SetContext(context.Background())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
