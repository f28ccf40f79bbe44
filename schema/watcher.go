package schema

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fudini/bender/errors"
	"github.com/fudini/bender/logger"
)

// Watcher watches a schema file for changes and triggers regeneration
// callbacks. Used by `bender generate --watch`.
type Watcher struct {
	schemaPath     string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ChangeCallback is called with the reloaded type list after the schema
// file changes. Returning an error is logged, not fatal: the watch loop
// keeps running so a broken edit can be fixed and saved again.
type ChangeCallback func(types []TypeDefinition) error

// NewWatcher creates a watcher for the given schema file.
func NewWatcher(schemaPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(schemaPath); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch schema file %s", schemaPath)
	}

	w := &Watcher{
		schemaPath:     schemaPath,
		watcher:        watcher,
		callbacks:      make([]ChangeCallback, 0),
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid editor saves
	}

	return w, nil
}

// OnChange registers a callback to be called when the schema is reloaded
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for schema file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events; editors that replace
			// the file on save surface as Create
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Schema watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Schema watcher error",
				"error", err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("Schema reload failed",
				"error", err)
		}
	})
}

// reload reloads the schema and calls all callbacks
func (w *Watcher) reload() error {
	types, err := LoadFile(w.schemaPath)
	if err != nil {
		return errors.Wrap(err, "failed to reload schema")
	}

	logger.Infow("Schema reloaded",
		"path", w.schemaPath,
		"types", len(types))

	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(types); err != nil {
			logger.Warnw("Schema change callback error",
				"error", err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching for schema changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
