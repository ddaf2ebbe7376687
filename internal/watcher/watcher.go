// Package watcher follows a notebook folder for new experiment files.
package watcher

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iuga/starlog"
)

// EventType represents the type of file system event.
type EventType int

// Event types for notebook folder changes.
const (
	EventExperimentCreated EventType = iota
	EventPlotCreated
	EventCapitanAppended
)

// Event represents a change inside the watched notebook folder.
type Event struct {
	Type    EventType
	Version string
	Path    string
}

// Watcher watches one notebook folder and its version subdirectories.
type Watcher struct {
	folder     string
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	mu         sync.Mutex
	debounce   map[string]*time.Timer
}

// New creates a watcher for the given notebook folder.
func New(folder string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		folder:     folder,
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching the folder and every existing version directory.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.folder); err != nil {
		return err
	}

	entries, err := os.ReadDir(w.folder)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(w.folder, e.Name())
		if err := w.fsWatcher.Add(dir); err != nil {
			log.Printf("Warning: failed to watch version dir %s: %v", dir, err)
		}
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// processEvents pumps file system events until Stop.
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
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename covers atomic writes
	// (write tmp, rename to target) used by some tools.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	// A new version directory must itself be watched.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if filepath.Dir(event.Name) == filepath.Clean(w.folder) {
				if err := w.fsWatcher.Add(event.Name); err != nil {
					log.Printf("Warning: failed to watch version dir %s: %v", event.Name, err)
				}
			}
			return
		}
	}

	// Debounce per path: appends arrive as bursts of writes.
	w.debounceEvent(event.Name, func() {
		w.processFileChange(event.Name)
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.mu.Lock()
		delete(w.debounce, path)
		w.mu.Unlock()
		fn()
	})
}

// processFileChange classifies a debounced file change.
func (w *Watcher) processFileChange(path string) {
	filename := filepath.Base(path)

	if filename == starlog.CapitanFileName {
		w.eventsChan <- Event{Type: EventCapitanAppended, Path: path}
		return
	}

	if !strings.HasPrefix(filename, "exp.") {
		return
	}
	version := filepath.Base(filepath.Dir(path))

	switch filepath.Ext(filename) {
	case ".txt":
		w.eventsChan <- Event{Type: EventExperimentCreated, Version: version, Path: path}
	case ".png":
		w.eventsChan <- Event{Type: EventPlotCreated, Version: version, Path: path}
	}
}
