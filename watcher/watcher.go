package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"greg-hacke/go-imagedpi/config"
	"greg-hacke/go-imagedpi/meta"
)

// Watcher reports the DPI of images written into the configured folders
type Watcher struct {
	cfg      *config.Config
	resolver *meta.Resolver
	watcher  *fsnotify.Watcher
	events   chan Event

	mu       sync.Mutex
	debounce map[string]*time.Timer
	closed   bool
	wg       sync.WaitGroup
}

// Event is the result of inspecting one changed file
type Event struct {
	Path   string
	Report meta.Report
	Err    error
}

// New creates a watcher for the folders listed in cfg.Watch.Dirs
func New(cfg *config.Config, resolver *meta.Resolver) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if resolver == nil {
		resolver = cfg.NewResolver(nil)
	}

	return &Watcher{
		cfg:      cfg,
		resolver: resolver,
		watcher:  fsWatcher,
		events:   make(chan Event, 100),
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins monitoring all configured folders
func (w *Watcher) Start() error {
	if len(w.cfg.Watch.Dirs) == 0 {
		return fmt.Errorf("no folders to watch")
	}

	for _, dir := range w.cfg.Watch.Dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch folder %s: %w", dir, err)
		}
		w.logger().Printf("Watching folder: %s", dir)
	}

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// processEvents debounces fsnotify events per path
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.schedule(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger().Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return w.cfg.WatchesExtension(event.Name)
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if timer, exists := w.debounce[path]; exists {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(w.cfg.Watch.Debounce, func() {
		w.handle(path)
	})
}

// handle inspects path and publishes the result
func (w *Watcher) handle(path string) {
	report, err := w.resolver.ReadFile(path)
	if err != nil {
		w.logger().Printf("Failed to read %s: %v", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.debounce, path)
	if w.closed {
		return
	}
	select {
	case w.events <- Event{Path: path, Report: report, Err: err}:
	default:
		w.logger().Printf("Event buffer full, dropping %s", path)
	}
}

func (w *Watcher) logger() *log.Logger {
	if w.resolver.Logger != nil {
		return w.resolver.Logger
	}
	return log.Default()
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and closes the event channel
func (w *Watcher) Stop() error {
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()

	for path, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, path)
	}
	if !w.closed {
		w.closed = true
		close(w.events)
	}
	return err
}
