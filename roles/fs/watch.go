package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams the file's contents on every write or create, after a short
// debounce so editor save bursts coalesce into one read. The initial
// contents are emitted immediately. The channel closes when ctx is cancelled
// or the underlying watcher dies; each emitted slice is owned by the
// receiver.
func (r *FSRole) Watch(ctx context.Context, path string) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	debounce := time.Duration(r.config.WatchDebounceMillis) * time.Millisecond
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer watcher.Close()

		if data, err := r.ReadFile(path); err == nil {
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if debounce > 0 {
					select {
					case <-time.After(debounce):
					case <-ctx.Done():
						return
					}
					drainEvents(watcher)
				}

				data, err := r.ReadFile(path)
				if err != nil {
					r.logger.Warn("watch read failed", "path", path, "error", err)
					continue
				}
				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Error("watcher error", "path", path, "error", err)
			}
		}
	}()

	return out, nil
}

// drainEvents discards events queued during the debounce window.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
