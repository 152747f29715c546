package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to the config file. It watches the containing
// directory rather than the file itself, since editors typically replace
// the file by rename and that would drop a direct watch.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch invokes onChange (from the watcher goroutine) whenever the file
// at path is created or rewritten. The directory must exist.
func Watch(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	name := filepath.Base(path)
	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					onChange()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Printf("config: watch: %v", err)
			}
		}
	}()
	return w, nil
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() {
	w.fw.Close()
	<-w.done
}
