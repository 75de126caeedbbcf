// Package watch re-runs a check whenever grass source files change.
package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configures a Watcher.
type Options struct {
	// Debounce drops repeated events for the same file that arrive within
	// this window.
	Debounce time.Duration
	// Extensions limits the files of interest, e.g. ".grass".
	Extensions []string
	// OnChange is called with the path of every changed source file.
	OnChange func(path string)
	Logger   *slog.Logger
}

// Watcher monitors directories for changed source files
type Watcher struct {
	watcher *fsnotify.Watcher
	options Options
	logger  *slog.Logger

	mu         sync.Mutex
	lastChange map[string]time.Time
}

// New creates a watcher. Directories are added with Add.
func New(options Options) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{
		watcher:    fsWatcher,
		options:    options,
		logger:     logger,
		lastChange: make(map[string]time.Time),
	}, nil
}

// Add watches root and every directory below it, skipping hidden ones.
func (w *Watcher) Add(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		w.logger.Debug("watching directory", "dir", path)
		return w.watcher.Add(path)
	})
}

// Run processes file system events until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.Add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}
			if w.accept(event, time.Now()) {
				w.logger.Debug("source changed", "path", event.Name, "op", event.Op.String())
				if w.options.OnChange != nil {
					w.options.OnChange(event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}

// accept decides whether event should trigger a check at time now.
func (w *Watcher) accept(event fsnotify.Event, now time.Time) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if !w.Matches(event.Name) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if last, ok := w.lastChange[event.Name]; ok && now.Sub(last) < w.options.Debounce {
		return false
	}
	w.lastChange[event.Name] = now
	return true
}

// Matches reports whether path has one of the watched extensions. With no
// extensions configured every file matches.
func (w *Watcher) Matches(path string) bool {
	if len(w.options.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.options.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
