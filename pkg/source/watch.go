package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// EventType describes a change to a watched document.
type EventType int

const (
	// EventChanged means the document was written, created or renamed into
	// place and should be reloaded.
	EventChanged EventType = iota

	// EventRemoved means the document disappeared. The loaded quest stays
	// on display.
	EventRemoved

	// EventError carries a watcher error.
	EventError
)

// Event is emitted by Watch.
type Event struct {
	Type EventType
	Path string
	Err  error
}

const watchThrottle = 100 * time.Millisecond

// Watch streams change events for the document at location until ctx is
// cancelled. The parent directory is watched so editors that save by
// renaming a temp file are still noticed. Callers should drain the channel;
// events are dropped rather than block the watcher.
func Watch(ctx context.Context, location string, logger *zap.Logger) (<-chan Event, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if IsRemote(location) {
		return nil, fmt.Errorf("source: cannot watch remote document %s", location)
	}
	expanded, err := homedir.Expand(location)
	if err != nil {
		return nil, fmt.Errorf("source: expand %s: %w", location, err)
	}
	target, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", location, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("source: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("source: watch %s: %w", filepath.Dir(target), err)
	}

	events := make(chan Event, 16)
	send := func(ev Event) {
		select {
		case events <- ev:
		default:
			// The consumer is behind; the next event triggers the same reload.
		}
	}

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("watcher close", zap.Error(err))
			}
		}()

		throttle := newEventThrottle(watchThrottle, send)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", zap.String("path", target), zap.Error(err))
				throttle.Enqueue(Event{Type: EventError, Path: target, Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				switch {
				case evt.Op&(fsnotify.Write|fsnotify.Create) != 0:
					throttle.Enqueue(Event{Type: EventChanged, Path: target})
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					throttle.Enqueue(Event{Type: EventRemoved, Path: target})
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces a burst of notifications into one event per type
// so a save that touches the file several times reloads once.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	order   []EventType
	delay   time.Duration
	send    func(Event)
	stopped bool
}

func newEventThrottle(delay time.Duration, send func(Event)) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		send:    send,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if _, seen := t.pending[ev.Type]; !seen {
		t.order = append(t.order, ev.Type)
	}
	t.pending[ev.Type] = ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
}

func (t *eventThrottle) flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	for _, typ := range t.order {
		t.send(t.pending[typ])
	}
	t.pending = make(map[EventType]Event)
	t.order = nil
	t.timer = nil
}

// Stop cancels any pending flush. Nothing is sent after Stop returns.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
