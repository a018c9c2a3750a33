package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when its file changes on disk.
// Rapid write bursts (editors often write several events per save) are
// debounced into a single reload.
type Watcher struct {
	path     string
	delay    time.Duration
	onChange func(Config)
	onError  func(error)

	fw *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// WatchFile watches the configuration file at path. onChange receives
// each successfully reloaded configuration; onError receives reload and
// watch failures. Either callback may be nil. The parent directory is
// watched so the file may not exist yet.
func WatchFile(path string, delay time.Duration, onChange func(Config), onError func(error)) (*Watcher, error) {
	if delay <= 0 {
		delay = 250 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		path:     path,
		delay:    delay,
		onChange: onChange,
		onError:  onError,
		fw:       fw,
		closeCh:  make(chan struct{}),
	}
	w.doneWg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fw.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.doneWg.Done()
	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(fmt.Errorf("config watcher: %w", err))
		}
	}
}

// scheduleReload arms the debounce timer, restarting it if a reload is
// already pending.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	cfg, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
