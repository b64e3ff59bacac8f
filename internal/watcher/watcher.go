// Package watcher provides debounced file system watching for the
// configured document roots.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is the time to wait after the last file event before
// triggering a callback. This coalesces rapid changes (e.g., an editor
// save with backup files) into a single notification.
const debounceDelay = 100 * time.Millisecond

// Watcher watches document roots recursively for markdown changes and
// invokes a callback with debouncing.
type Watcher struct {
	fsw      *fsnotify.Watcher
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
}

// New creates a Watcher over the given roots and all their subdirectories.
// Roots that do not exist are skipped, matching the locator. The callback is
// invoked (debounced) whenever a markdown file changes.
func New(roots []string, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fsw: fsw, callback: callback}
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := w.addTree(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Run starts the watch loop. It blocks until the context is canceled.
// Errors from the underlying watcher are passed to the optional errFn
// callback.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Start watching directories created under a root.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(event.Name)
				}
			}
			if !relevant(event.Name, event.Op) {
				continue
			}
			w.debounce()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// addTree registers a directory and everything below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.fsw.Add(path)
	})
}

// relevant reports whether an event should trigger a rescan: markdown file
// changes, plus removes and renames whose extension we can still see.
func relevant(name string, op fsnotify.Op) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown") {
		return true
	}
	// Directory removals and renames can take markdown files with them.
	return op&(fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.callback)
}
