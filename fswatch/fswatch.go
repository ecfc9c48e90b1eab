// Package fswatch exposes filesystem notifications as a generator.
package fswatch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/stealthrocket/generator"
)

// Events returns a Source of the filesystem events observed on paths. The
// sequence never ends on its own; consumers should take the prefix they need
// and stop the iteration, which closes the underlying watcher.
//
// Each iteration creates its own watcher. Paths are only watched once the
// first event is requested, so changes made before that are not observed.
func Events(paths ...string) *generator.Source[fsnotify.Event] {
	return generator.NewFunc(func(e *generator.Emitter[fsnotify.Event]) error {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("fswatch: %w", err)
		}
		defer w.Close()

		for _, path := range paths {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("fswatch: watching %s: %w", path, err)
			}
		}

		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				e.Emit(event)
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return fmt.Errorf("fswatch: %w", err)
			}
		}
	})
}
