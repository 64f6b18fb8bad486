package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// definitionWatcher reports changes of definition files, coalescing bursts
// of events into one callback per quiet period
type definitionWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *logrus.Logger
}

// newDefinitionWatcher watches dirs and their subdirectories. Missing
// directories are skipped.
func newDefinitionWatcher(log *logrus.Logger, debounce time.Duration, dirs ...string) (*definitionWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &definitionWatcher{
		watcher:  watcher,
		debounce: debounce,
		log:      log,
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := w.addTree(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return w, nil
}

// addTree recursively adds all directories to the watcher
func (w *definitionWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		w.log.WithField("dir", path).Debug("Watching directory")
		return w.watcher.Add(path)
	})
}

// Run calls onChange after every burst of definition changes until ctx is done
func (w *definitionWatcher) Run(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			// Also watch new directories
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.log.WithError(err).WithField("dir", event.Name).Warn("Failed to watch directory")
					}
					continue
				}
			}

			if !isDefinitionChange(event) {
				continue
			}
			w.log.WithFields(logrus.Fields{
				"file": event.Name,
				"op":   event.Op.String(),
			}).Debug("Definition changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("Watcher error")
		}
	}
}

// Close stops watching
func (w *definitionWatcher) Close() error {
	return w.watcher.Close()
}

func isDefinitionChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
