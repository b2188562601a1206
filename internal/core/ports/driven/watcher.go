package driven

import "context"

// Watcher reports changes to a file.
type Watcher interface {
	// Watch signals on the returned channel each time the file at path
	// changes. Bursts of changes may be coalesced into one signal.
	// The channel is closed when ctx is cancelled or watching fails.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
