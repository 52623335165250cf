package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog's global binding table whenever its binding
// file changes on disk. Rapid consecutive writes, as editors produce when
// saving, are coalesced into one reload.
type Watcher struct {
	catalog *Catalog
	path    string
	delay   time.Duration

	// OnReload, when set, is called after every reload attempt with the
	// reload's result. Set it before the first file change arrives.
	OnReload func(err error)

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *time.Timer
	closed  bool

	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching the binding file at path for the catalog.
// The file's directory is watched rather than the file itself so that
// atomic rename-over-save still triggers a reload.
func NewWatcher(c *Catalog, path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		catalog: c,
		path:    absPath,
		delay:   debounce,
		watcher: fsw,
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched binding file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Name != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Reset(w.delay)
		return
	}
	w.pending = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	onReload := w.OnReload
	w.mu.Unlock()

	err := w.catalog.LoadFile(w.path)
	if onReload != nil {
		onReload(err)
	}
}
