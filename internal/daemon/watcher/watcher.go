// Package watcher reports changes to the settings file while the daemon runs.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses the bursts editors produce on a single save.
const debounceDelay = 100 * time.Millisecond

// Watcher watches one file by watching its parent directory, so atomic
// replace-by-rename saves are seen as well.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan struct{}
	done       chan struct{}
	stopOnce   sync.Once
	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a watcher for the file at path. The parent directory must exist.
func New(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		path:       path,
		eventsChan: make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Changes returns a coalescing channel that receives after the file changed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.eventsChan
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename matters: atomic writes (write tmp, rename onto target) show up
	// as Create or Rename on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		log.Printf("[watcher] Settings changed: %s (op=%s)", w.path, event.Op)
		select {
		case w.eventsChan <- struct{}{}:
		default:
		}
	})
}
