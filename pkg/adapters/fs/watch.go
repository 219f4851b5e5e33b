package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/taskflow/pkg/core"
)

const defaultEventBuffer = 100

// Watch reports changes to files in the store root whose name matches
// pattern (doublestar syntax). An empty pattern watches the task file only.
// The returned channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = s.config.File
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	size := s.config.EventBuffer
	if size <= 0 {
		size = defaultEventBuffer
	}
	events := make(chan core.Event, size)

	w := newWatchWorker(s, pattern, events, func() { close(events) })
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// shouldIgnore filters temp files and names outside pattern.
func (s *Store) shouldIgnore(event fsnotify.Event, pattern string) bool {
	if isTempFile(event.Name) {
		return true
	}
	id, err := s.resolveID(event.Name)
	if err != nil {
		return true
	}
	ok, err := doublestar.Match(pattern, id)
	return err != nil || !ok
}

// resolveID maps an absolute event path to a slash-separated name relative to the root.
func (s *Store) resolveID(path string) (string, error) {
	rel, err := filepath.Rel(s.Path, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func (s *Store) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// debouncer coalesces bursts of events per ID; the last event wins.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if prev, ok := d.timers[e.ID]; ok && prev.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[e.ID] == t {
			delete(d.timers, e.ID)
		}
		d.mu.Unlock()
		fire(e)
	})
	d.timers[e.ID] = t
}

// stopAndWait drops pending events and waits for in-flight callbacks.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
