package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDir reports writes to files in dir whose base name starts with prefix
// (any file when prefix is empty). Bursts of events are coalesced into one
// notification. The channel closes when ctx is done.
func WatchDir(ctx context.Context, dir, prefix string) (<-chan struct{}, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensuring watch dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
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
			// A notification is already pending.
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

		throttle := newThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Trigger(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !strings.HasPrefix(filepath.Base(evt.Name), prefix) {
					continue
				}
				throttle.Trigger(send)
			}
		}
	}()

	return changes, nil
}

// throttle runs the latest callback once per burst of triggers.
type throttle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

func (t *throttle) Trigger(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.mu.Lock()
			t.timer = nil
			t.mu.Unlock()
			fn()
		})
	}
}

func (t *throttle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
