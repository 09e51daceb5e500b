// Package watch re-runs an analysis whenever its request file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher watches request files for changes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	events   chan string
	debounce time.Duration
	logger   *slog.Logger
}

// NewFileWatcher watches the given files. The parent directories are
// watched rather than the files so that editors that save by rename keep
// being tracked.
func NewFileWatcher(logger *slog.Logger, debounce time.Duration, paths ...string) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		events:   make(chan string, 16),
		debounce: debounce,
		logger:   logger,
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return fw, nil
}

// Start processes events until ctx is done, then closes the watcher and the
// Events channel.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.processEvents(ctx)
}

func (fw *FileWatcher) processEvents(ctx context.Context) {
	pending := make(map[string]bool)
	flushTimer := time.NewTimer(fw.debounce)
	flushTimer.Stop()

	defer func() {
		flushTimer.Stop()
		fw.watcher.Close()
		close(fw.events)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !fw.files[abs] {
				continue
			}
			pending[abs] = true
			flushTimer.Reset(fw.debounce)

		case <-flushTimer.C:
			for path := range pending {
				select {
				case fw.events <- path:
				case <-ctx.Done():
					return
				}
				delete(pending, path)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watcher error", "error", err)
		}
	}
}

// Events returns the channel of changed file paths (absolute).
func (fw *FileWatcher) Events() <-chan string {
	return fw.events
}

// Run calls fn once for path and again after every change until ctx is
// done. Errors from fn are logged and do not stop watching.
func Run(ctx context.Context, logger *slog.Logger, path string, fn func() error) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fw, err := NewFileWatcher(logger, 0, path)
	if err != nil {
		return err
	}
	if err := fn(); err != nil {
		logger.Warn("analysis failed", "path", path, "error", err)
	}
	fw.Start(ctx)
	logger.Info("watching for changes", "path", path)

	for changed := range fw.Events() {
		logger.Info("file changed", "path", changed)
		if err := fn(); err != nil {
			logger.Warn("analysis failed", "path", changed, "error", err)
		}
	}
	return ctx.Err()
}
