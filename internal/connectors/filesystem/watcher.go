package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// Watcher signals when a file is written or recreated.
// Signals are spaced at least interval apart; events arriving while a
// signal is pending are folded into it.
type Watcher struct {
	interval time.Duration
}

// NewWatcher creates a watcher throttled to one signal per interval.
// A zero interval disables throttling.
func NewWatcher(interval time.Duration) *Watcher {
	return &Watcher{interval: interval}
}

// Watch watches the directory containing path, so that editors which
// replace the file by rename are still observed.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("Watching %s (interval %s)", abs, w.interval)

	out := make(chan struct{})
	go w.loop(ctx, fw, abs, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, out chan<- struct{}) {
	defer close(out)
	defer fw.Close()

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !isChange(event, path) || fire != nil {
				continue
			}
			logger.Debug("Change detected: %s", event)
			fire = time.After(limiter.Reserve().Delay())

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error on %s: %v", path, err)

		case <-fire:
			fire = nil
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// isChange reports whether event means path has new content.
func isChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
