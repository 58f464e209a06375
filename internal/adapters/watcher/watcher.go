// Package watcher watches interpreter source directories so cached
// discoveries can be refreshed as soon as an environment changes.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. Directories are watched
// non-recursively: creating or removing an environment touches its parent.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new Watcher. No resources are held until Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching dirs. Missing directories are skipped.
func (w *Watcher) Start(ctx context.Context, dirs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			_ = fsw.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "dir", dir)
		}
	}
	w.fsWatcher = fsw

	go w.processEvents(ctx, fsw)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Events returns an iterator of file system events. It ends when the watcher
// stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
