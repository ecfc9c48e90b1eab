package fswatch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stealthrocket/generator"
)

func TestEvents(t *testing.T) {
	dir := t.TempDir()
	it := Events(dir).Iterator()

	type result struct {
		event fsnotify.Event
		err   error
	}
	c := make(chan result, 1)
	go func() {
		event, err := it.Next()
		c <- result{event, err}
	}()

	// The watcher is only installed once the producer starts, keep writing
	// until an event is observed.
	name := filepath.Join(dir, "file")
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)

	for {
		select {
		case r := <-c:
			it.Stop()
			if r.err != nil {
				t.Fatal(r.err)
			}
			if r.event.Name != name {
				t.Errorf("wrong event name: want=%s got=%s", name, r.event.Name)
			}
			return
		case <-ticker.C:
			if err := os.WriteFile(name, []byte("hello"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-timeout:
			t.Fatal("no event observed")
		}
	}
}

func TestEventsMissingPath(t *testing.T) {
	it := Events(filepath.Join(t.TempDir(), "missing")).Iterator()

	_, err := it.Next()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("wrong error: want=%v got=%v", fs.ErrNotExist, err)
	}
	if _, err := it.Next(); err != generator.ErrEndOfSequence {
		t.Errorf("expected end of sequence: got=%v", err)
	}
}
