package articulation

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/johndoe6345789/WordNet/internal/logging"
)

// PhraseWatcher reloads a phrase override file whenever it changes on
// disk, so wording can be tuned without restarting a session.
type PhraseWatcher struct {
	provider *Provider
	path     string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// WatchPhraseFile loads path into provider and starts watching it for
// changes. The containing directory is watched so editor rename-and-write
// saves are caught too.
func WatchPhraseFile(provider *Provider, path string) (*PhraseWatcher, error) {
	if err := provider.LoadFile(path); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &PhraseWatcher{
		provider: provider,
		path:     filepath.Clean(path),
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *PhraseWatcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.provider.LoadFile(w.path); err != nil {
				logging.Articulation("phrase reload failed: %v", err)
				continue
			}
			logging.Articulation("phrase file reloaded: %s", w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Articulation("phrase watcher error: %v", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *PhraseWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
