// Package watcher notifies on changes to demo catalog files so the
// running catalog can be reloaded.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// DefaultDebounce coalesces the burst of write events most editors emit
// when saving a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of catalog files. Editors often
// replace files on save (write to temp, rename over), so it watches the
// parent directories and filters events down to the tracked paths.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	tracked map[string]bool
	pending map[string]*time.Timer
	closed  bool

	events   chan string
	errs     chan error
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New builds a watcher over the given catalog files. A debounce of zero
// or less falls back to DefaultDebounce.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		tracked:  make(map[string]bool),
		pending:  make(map[string]*time.Timer),
		events:   make(chan string, 16),
		errs:     make(chan error, 16),
		closeCh:  make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Events returns the channel of changed catalog paths. Each value is the
// absolute path of a tracked file, emitted once per debounce window.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, t := range w.pending {
		if t.Stop() {
			w.closedWg.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errs)
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				w.handleChange(ev.Name)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// handleChange arms or re-arms the debounce timer for a tracked path.
func (w *Watcher) handleChange(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.tracked[abs] {
		return
	}

	if t, ok := w.pending[abs]; ok {
		if t.Stop() {
			t.Reset(w.debounce)
			return
		}
		// The timer expired and its callback is waiting on w.mu; it
		// cleans up its own entry. Arm a fresh timer for this event.
	}
	w.closedWg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.fire(abs, t)
	})
	w.pending[abs] = t
}

func (w *Watcher) fire(path string, t *time.Timer) {
	defer w.closedWg.Done()

	w.mu.Lock()
	// Only remove the entry if it is still ours; a write event arriving
	// after expiry may have armed a replacement timer under this path.
	if w.pending[path] == t {
		delete(w.pending, path)
	}
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}
	select {
	case w.events <- path:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
