package keymap

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a keymap file into a Table whenever the file changes on
// disk. Load and bind errors go to the error callback; a malformed binding
// in the new file never aborts the reload of its valid siblings.
type Watcher struct {
	fsw   *fsnotify.Watcher
	path  string
	table *Table

	onError func(error)

	closeOnce sync.Once
	done      chan struct{}
}

// WatchFile starts watching path and applying its bindings to table with
// ReplaceAll. onError may be nil. The initial load is the caller's
// responsibility; the watcher only reacts to changes.
func WatchFile(path string, table *Table, onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors commonly replace files by rename, which
	// drops a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    filepath.Clean(path),
		table:   table,
		onError: onError,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) reload() {
	bindings, err := LoadFile(w.path)
	if err != nil {
		w.report(err)
		return
	}
	if err := w.table.ReplaceAll(bindings); err != nil {
		w.report(err)
	}
}

func (w *Watcher) report(err error) {
	if w.onError != nil && err != nil {
		w.onError(err)
	}
}
