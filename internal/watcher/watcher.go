// Package watcher watches the corpus file for on-disk changes with fsnotify.
// The indices are built once per process and never rebuilt incrementally, so
// a change only produces a staleness warning: a restart reloads the corpus.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches the corpus file and invokes a callback when it changes.
type Watcher struct {
	path     string
	onChange func(path string)
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu       sync.Mutex
	timer    *time.Timer
	started  bool
	stopOnce sync.Once
	done     chan struct{}
	logger   *zap.Logger // optional; when set, logs debug events
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// NewWatcher creates a watcher for the corpus file at path. onChange is
// called (debounced) when the file is written, replaced, or removed.
func NewWatcher(path string, onChange func(path string), opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		onChange: onChange,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start starts watching. It runs until ctx is cancelled or Stop is called.
// The parent directory is watched rather than the file itself, so atomic
// replace (write temp + rename) is still observed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		w.mu.Unlock()
		return err
	}
	w.watcher = fw
	w.started = true
	w.mu.Unlock()

	if w.logger != nil {
		w.logger.Debug("corpus watcher started", zap.String("path", w.path))
	}
	go w.run(ctx)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if w.logger != nil {
				w.logger.Debug("corpus file event", zap.String("op", event.Op.String()))
			}
			w.scheduleChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("corpus watcher error", zap.Error(err))
			}
		}
	}
}

// scheduleChange debounces rapid successive events into one callback.
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(w.path)
	})
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		w.mu.Unlock()
	})
}
