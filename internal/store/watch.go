package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last event before
// checking the file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports edits to the decks file made outside this process.
type Watcher struct {
	fs       *fsnotify.Watcher
	store    *Store
	onChange func()
	debounce time.Duration

	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Watch starts watching the decks file. onChange runs on the watcher goroutine
// whenever the file content differs from what the store last loaded or saved,
// so the store's own saves never trigger it. The watcher stops when ctx is
// cancelled or Stop is called.
func (s *Store) Watch(ctx context.Context, onChange func()) (*Watcher, error) {
	return s.watch(ctx, onChange, DefaultDebounce)
}

func (s *Store) watch(ctx context.Context, onChange func(), debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// The directory is watched rather than the file so atomic renames and
	// recreation are seen.
	dir := filepath.Dir(s.path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	w := &Watcher{
		fs:       fsw,
		store:    s,
		onChange: onChange,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Stop stops the watcher and waits for its goroutine to exit. Safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	<-w.done
}

// Done is closed once the watcher goroutine has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer func() { _ = w.fs.Close() }()

	target := filepath.Base(w.store.path)
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			w.check()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.store.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) check() {
	current := ""
	data, err := os.ReadFile(w.store.path)
	switch {
	case err == nil:
		current = digestOf(data)
	case !os.IsNotExist(err):
		w.store.logger.Warn("failed to read decks file after change", "error", err)
		return
	}

	if !w.store.swapDigest(current) {
		return
	}
	w.store.logger.Info("decks file changed on disk", "path", w.store.path)
	if w.onChange != nil {
		w.onChange()
	}
}
