// Package watch re-runs a callback when a database file changes.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/satishbabariya/rsdatabase/internal/debug"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// sidecars are the files SQLite writes next to the database in WAL and
// rollback journal modes.
var sidecars = []string{"", "-wal", "-journal"}

// Watcher watches a database file for changes
type Watcher struct {
	files    map[string]bool
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan bool

	// Debounce can be changed before Start.
	Debounce time.Duration
}

// NewWatcher creates a new file watcher
func NewWatcher(file string, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Watch the directory so sidecar files created later are seen too
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	files := make(map[string]bool, len(sidecars))
	for _, suffix := range sidecars {
		files[absPath+suffix] = true
	}

	return &Watcher{
		files:    files,
		callback: callback,
		watcher:  watcher,
		done:     make(chan bool),
		Debounce: DefaultDebounce,
	}, nil
}

// Start runs the callback once and then again after every settled change.
func (w *Watcher) Start() error {
	if err := w.callback(); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	go func() {
		debounceTimer := time.NewTimer(w.Debounce)
		debounceTimer.Stop()
		var debounceCh <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && w.watches(event.Name) {
					debounceTimer.Reset(w.Debounce)
					debounceCh = debounceTimer.C
				}

			case <-debounceCh:
				if err := w.callback(); err != nil {
					debug.Warn("watch callback failed", "error", err)
				}
				debounceCh = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				debug.Warn("watch error", "error", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

func (w *Watcher) watches(name string) bool {
	path, err := filepath.Abs(name)
	return err == nil && w.files[path]
}

// Stop stops watching the file
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
