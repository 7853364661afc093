package codebase

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a codebase in sync with changes made to its files on disk.
type Watcher struct {
	codebase  *Codebase
	walker    *Walker
	fsWatcher *fsnotify.Watcher
	onChange  func(path string)
	done      chan struct{}
	stopped   chan struct{}
}

type WatcherOption func(*Watcher)

// WithOnChange registers fn to run after a file was rescanned or removed.
func WithOnChange(fn func(path string)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

func NewWatcher(c *Codebase, opts ...WatcherOption) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		codebase:  c,
		walker:    c.Walker(),
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addDirs(c.RootDir()); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch %s: %w", c.RootDir(), err)
	}
	return w, nil
}

func (w *Watcher) addDirs(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root {
			if rel, ok := w.rel(path); ok && (w.walker.excluded(rel+"/") || w.walker.ignored(rel+"/")) {
				return filepath.SkipDir
			}
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	<-w.stopped
	return err
}

func (w *Watcher) run() {
	defer close(w.stopped)
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
			log.Errorf("watch: %s", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addDirs(event.Name); err != nil {
				log.Warningf("watch %s: %s", event.Name, err)
			}
			return
		}
	}

	// A directory that goes away only reports itself.
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if n := w.codebase.RemoveDir(event.Name); n > 0 {
			log.Debugf("removed %d files below %s", n, event.Name)
			if w.onChange != nil {
				w.onChange(event.Name)
			}
			return
		}
	}

	rel, ok := w.rel(event.Name)
	if !ok || !w.walker.Selects(rel) {
		return
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		log.Debugf("removed %s", event.Name)
		w.codebase.RemoveFile(event.Name)
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		log.Debugf("rescanning %s", event.Name)
		if err := w.codebase.ScanFile(event.Name); err != nil {
			log.Warningf("rescan %s: %s", event.Name, err)
		}
	default:
		return
	}

	if w.onChange != nil {
		w.onChange(event.Name)
	}
}

func (w *Watcher) rel(path string) (string, bool) {
	rel, err := filepath.Rel(w.codebase.RootDir(), path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
