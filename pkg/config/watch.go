package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay coalesces the burst of writes an editor makes on save.
const DefaultWatchDelay = 100 * time.Millisecond

// Watch signals on the returned channel whenever file changes, until ctx is
// cancelled. The parent directory is watched so editors that replace the
// file on save are still seen. Signals are coalesced and dropped when the
// consumer is not ready; the receiver should reload on every signal.
func Watch(ctx context.Context, file string, delay time.Duration) (<-chan struct{}, error) {
	if file == "" {
		return nil, errors.New("config: no config file to watch")
	}
	if delay <= 0 {
		delay = DefaultWatchDelay
	}
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", file, err)
	}

	changes := make(chan struct{}, 1)
	var mu sync.Mutex
	closed := false
	send := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	go func() {
		defer func() {
			mu.Lock()
			closed = true
			close(changes)
			mu.Unlock()
		}()
		defer watcher.Close()

		d := newDebouncer(delay)
		defer d.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// The change cannot be classified; reload to be safe.
				d.Trigger(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != file {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				d.Trigger(send)
			}
		}
	}()

	return changes, nil
}

// debouncer fires once per burst of triggers.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Trigger(fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fire()
	})
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}
