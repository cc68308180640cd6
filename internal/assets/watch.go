package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors and exporters often write a file in several steps; changes inside
// this window collapse into one notification.
const watchDebounce = 250 * time.Millisecond

// Watch calls onChange, from a background goroutine, after the file at path
// is written or replaced. It stops when ctx ends.
func (l *Loader) Watch(ctx context.Context, path string, onChange func()) error {
	full := l.Resolve(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", full, err)
	}
	// Watch the directory: replacing the file via rename drops a file watch.
	if err := w.Add(filepath.Dir(full)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", full, err)
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != full || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				l.log.WithField("path", full).Info("Assets: file changed")
				onChange()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.WithError(err).Warn("Assets: watcher error")
			}
		}
	}()
	return nil
}
