// Package watch re-runs diagram generation when the workspace file
// changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher debounces filesystem events on one workspace file and invokes a
// callback for each settled change.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	onChange func()
}

// New creates a watcher for path. onChange runs once per settled burst of
// write events.
func New(path string, onChange func(), log *zap.Logger) *Watcher {
	return &Watcher{
		path:     path,
		debounce: 250 * time.Millisecond,
		logger:   log,
		onChange: onChange,
	}
}

// Run blocks until ctx is canceled. The watch is set on the file's
// directory: editors often replace the file on save, which would drop a
// watch set on the file itself.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	target, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	w.logger.Info("watching workspace", zap.String("path", w.path))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			evPath, err := filepath.Abs(ev.Name)
			if err != nil || evPath != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			timer = nil
			fire = nil
			w.onChange()
		}
	}
}
