// Package watch reports changes to source files using OS-native
// notifications.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tinyrange/creducido/internal/logging"
)

// Watcher calls back when one of a set of files is written or recreated.
type Watcher struct {
	w   *fsnotify.Watcher
	log *slog.Logger
}

// New creates a Watcher. log may be nil.
func New(log *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Watcher{w: w, log: log}, nil
}

// Run watches paths until ctx is done, calling onChange with the path as
// given by the caller. Parent directories are watched so that editors
// which replace files on save are still seen.
func (w *Watcher) Run(ctx context.Context, paths []string, onChange func(path string)) error {
	files := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
		w.log.Debug("watching directory", "dir", d)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if p, ok := files[abs]; ok {
				w.log.Debug("file changed", "path", p, "op", ev.Op.String())
				onChange(p)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) Close() error { return w.w.Close() }
