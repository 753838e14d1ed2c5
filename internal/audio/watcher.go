package audio

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the clips directory and invalidates the speaker's decode
// cache when an asset file changes, so re-recorded clips take effect without
// a restart.
type Watcher struct {
	watcher *fsnotify.Watcher
	speaker *Speaker
	dir     string
	logger  *slog.Logger
	done    chan struct{}

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the given clips directory.
func NewWatcher(speaker *Speaker, dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: fsWatcher,
		speaker: speaker,
		dir:     dir,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the clips directory for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				w.logger.Debug("clip changed, invalidating cache", "file", event.Name)
				w.speaker.Invalidate(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("clip watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
