package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/arty/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

// Watch observes the managed directory and emits an event for every change
// to an authorized image file. The channel is closed when ctx is done.
// Watch never modifies the collection; callers reload to reconcile.
func (r *Repository) Watch(ctx context.Context, dir string) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(abs); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDirectoryUnreadable, abs, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	w := &watchWorker{
		repo:      r,
		dir:       abs,
		watcher:   watcher,
		events:    events,
		debouncer: newDebouncer(debounceWindow),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.reportError(fmt.Errorf("watcher failed: %w", err))
	}))

	return events, nil
}

type watchWorker struct {
	repo      *Repository
	dir       string
	watcher   *fsnotify.Watcher
	events    chan core.Event
	debouncer *debouncer
}

// run is the main event loop of the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			logger := w.repo.config.Logger
			switch {
			case logger == nil:
			case logger.Enabled(ctx, slog.LevelDebug):
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			default:
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Flush pending timers before the events channel is closed.
	w.debouncer.stopAndWait()
	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.reportError(wErr)
		}
	}
}

// process filters and maps a raw filesystem event.
func (w *watchWorker) process(ctx context.Context, event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) || !core.IsAuthorized(name) {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	if w.repo.config.Logger != nil {
		w.repo.config.Logger.Debug("event received", "type", eType, "name", name)
	}

	w.debouncer.add(name, core.Event{
		Type:      eType,
		Filename:  name,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) reportError(err error) {
	if w.repo.config.Logger != nil {
		w.repo.config.Logger.Error("fsnotify error", "error", err)
	}
	if w.repo.config.ErrorHandler != nil {
		w.repo.config.ErrorHandler(err)
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

// debouncer coalesces bursts of events on the same file into the last one.
type debouncer struct {
	window  time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(key string, e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok && t.Stop() {
		d.pending.Done()
	}

	d.pending.Add(1)
	d.timers[key] = time.AfterFunc(d.window, func() {
		defer d.pending.Done()
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		emit(e)
	})
}

// stopAndWait stops accepting events and waits for in-flight emissions.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.pending.Wait()
}
