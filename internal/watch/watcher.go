// Package watch reruns an action when a file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"mcbanner/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before onChange runs.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a set of files and calls onChange once per burst of
// changes.
type Watcher struct {
	paths    []string
	onChange func(ctx context.Context) error
	debounce time.Duration
}

// New creates a watcher for paths. onChange is called after debouncing.
func New(onChange func(ctx context.Context) error, paths ...string) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		debounce: DefaultDebounce,
	}
}

// SetDebounce sets the debounce duration for file changes.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch blocks until ctx is cancelled, returning ctx.Err().
//
// The parent folders are watched rather than the files, so editors that
// save by renaming a temporary file over the target are still noticed.
// Errors from onChange are logged and do not stop the watcher.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(w.paths))
	dirs := make(map[string]bool)
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.Debug(ctx, "Watching folder '{{_Folder_}}%s{{|-|}}'.", dir)
	}

	var debounceTimer *time.Timer
	var debounceChan <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !targets[name] {
				continue
			}

			// Create covers atomic saves, Write covers direct writes
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Trace(ctx, "File '{{_File_}}%s{{|-|}}' changed ({{_Var_}}%s{{|-|}}).", event.Name, event.Op.String())

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.NewTimer(w.debounce)
				debounceChan = debounceTimer.C
			}

		case <-debounceChan:
			debounceChan = nil
			logger.Notice(ctx, "Change detected, regenerating.")
			if err := w.onChange(ctx); err != nil {
				logger.Error(ctx, "Regeneration failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}
