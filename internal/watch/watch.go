// Package watch triggers a callback when files of interest change under a
// host directory.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a directory and its direct subdirectories for changes to
// files with one of the given base names.
type Watcher struct {
	Root     string
	Names    []string
	Debounce time.Duration

	log *logrus.Logger
}

func New(root string, names []string, log *logrus.Logger) *Watcher {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Watcher{Root: root, Names: names, Debounce: DefaultDebounce, log: log}
}

// Relevant reports whether a change to path should trigger a run.
func (w *Watcher) Relevant(path string) bool {
	base := filepath.Base(path)
	for _, n := range w.Names {
		if base == n {
			return true
		}
	}
	return false
}

// Run calls fn once per burst of relevant changes until ctx is done.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw); err != nil {
		return err
	}

	timer := time.NewTimer(w.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && filepath.Dir(ev.Name) == filepath.Clean(w.Root) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.add(fw, ev.Name)
				}
			}
			if !w.Relevant(ev.Name) {
				continue
			}
			w.log.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("change detected")
			timer.Reset(w.Debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")

		case <-timer.C:
			fn()
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher) error {
	if err := fw.Add(w.Root); err != nil {
		return fmt.Errorf("watching %s: %w", w.Root, err)
	}
	entries, err := os.ReadDir(w.Root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", w.Root, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			w.add(fw, filepath.Join(w.Root, e.Name()))
		}
	}
	return nil
}

func (w *Watcher) add(fw *fsnotify.Watcher, dir string) {
	if err := fw.Add(dir); err != nil {
		w.log.WithError(err).WithField("dir", dir).Warn("cannot watch directory")
	}
}
