package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a configuration file whenever it changes on disk and
// hands the result to a callback. The callback runs on a timer
// goroutine; hop back onto your event loop before touching shared state.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	onChange  func(*Config)
	debounce  time.Duration
	closeOnce sync.Once

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

// Watch starts watching path. The parent directory is watched rather
// than the file itself: editors and `config save` replace the file by
// renaming a temporary over it, which would silently detach a watch on
// the old inode. Reloads are deferred until the file has been quiet for
// a short window, so multi-step saves deliver one complete reload.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		onChange: onChange,
		debounce: 200 * time.Millisecond,
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and cancels any pending reload. Safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.pending != nil {
			w.pending.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending == nil {
		w.pending = time.AfterFunc(w.debounce, w.reload)
		return
	}
	w.pending.Reset(w.debounce)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	f, err := os.Open(w.path)
	if err != nil {
		log.Printf("config watcher: reopen %s: %v", w.path, err)
		return
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		// Keep running with the previous settings.
		log.Printf("config watcher: parse %s: %v", w.path, err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
