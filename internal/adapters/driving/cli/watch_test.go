package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch <file> <n> <k>", watchCmd.Use)
}

func TestWatchCmd_RequiresThreeArgs(t *testing.T) {
	_, cleanup := setupTestServices(&fakeWatcher{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "file.txt"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 3 arg(s)")
}

func TestWatchCmd_RejectsInlineText(t *testing.T) {
	_, cleanup := setupTestServices(&fakeWatcher{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "definitely not a file", "1", "1"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch needs an existing file")
}

func TestWatchCmd_WatcherNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices(nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", writeFile(t, "a"), "1", "1"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file watcher not configured")
}

func TestWatchCmd_WatchFails(t *testing.T) {
	_, cleanup := setupTestServices(&fakeWatcher{err: errors.New("too many watches")})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", writeFile(t, "a"), "1", "1"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many watches")
}

func TestWatchCmd_RerunsOnChange(t *testing.T) {
	fw := &fakeWatcher{changes: make(chan struct{})}
	_, cleanup := setupTestServices(fw)
	defer cleanup()

	path := writeFile(t, "one two two")

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"watch", path, "1", "2"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchCmd.SetContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- rootCmd.ExecuteContext(ctx)
	}()

	// Each send is received only once the previous run has finished.
	fw.changes <- struct{}{}
	fw.changes <- struct{}{}
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	assert.Equal(t, path, fw.path)
	runs := strings.Count(out.String(), "The top 2 word 1-grams")
	assert.GreaterOrEqual(t, runs, 2)
	assert.Contains(t, out.String(), "\ttwo 2 (0.667)\n")
}

func TestWatchCmd_StopsWhenChannelCloses(t *testing.T) {
	fw := &fakeWatcher{changes: make(chan struct{})}
	close(fw.changes)
	_, cleanup := setupTestServices(fw)
	defer cleanup()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"watch", writeFile(t, "a b"), "2", "1"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "The top 1 word 2-grams"))
}

func TestWatchCmd_ReportsErrorsAndKeepsGoing(t *testing.T) {
	fw := &fakeWatcher{changes: make(chan struct{})}
	close(fw.changes)
	_, cleanup := setupTestServices(fw)
	defer cleanup()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"watch", writeFile(t, "bad \xff byte"), "1", "1"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "invalid UTF-8")
}
