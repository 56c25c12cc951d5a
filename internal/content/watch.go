package content

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gridguard/landing/internal/logger"
	"github.com/gridguard/landing/internal/metrics"
)

// reloadDebounce coalesces the burst of events editors emit per save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a Store whenever its content file changes on disk.
type Watcher struct {
	store    *Store
	log      *slog.Logger
	fw       *fsnotify.Watcher
	onReload func(*Registry)

	mu      sync.Mutex
	pending *time.Timer
	done    chan struct{}
	stopped bool
}

// NewWatcher prepares a watcher for store. onReload, if non-nil, runs after
// every successful reload.
func NewWatcher(store *Store, log *slog.Logger, onReload func(*Registry)) (*Watcher, error) {
	if store.Path() == "" {
		return nil, errors.New("content watcher: store has no content file")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		store:    store,
		log:      log.With(logger.Scope("content.watch")),
		fw:       fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the directory holding the content file. Watching the
// directory rather than the file survives editors that save by rename.
func (w *Watcher) Start() error {
	target, err := filepath.Abs(w.store.Path())
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(target)); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					w.schedule()
				}
			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch error", logger.Error(err))
			case <-w.done:
				return
			}
		}
	}()

	w.log.Info("watching content file", slog.String("path", target))
	return nil
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(reloadDebounce, w.reload)
}

func (w *Watcher) reload() {
	if err := w.store.Reload(); err != nil {
		metrics.ContentReloads.WithLabelValues("error").Inc()
		w.log.Warn("content reload failed, keeping previous content", logger.Error(err))
		return
	}
	metrics.ContentReloads.WithLabelValues("ok").Inc()
	w.log.Info("content reloaded")
	if w.onReload != nil {
		w.onReload(w.store.Current())
	}
}

// Stop ends watching. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
