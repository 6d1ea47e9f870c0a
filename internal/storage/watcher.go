package storage

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"lifedash/internal/providers"
)

// Watcher reloads a FileStore when its file is replaced by another process
// and reports the change through onChange.
type Watcher struct {
	store    *FileStore
	logger   providers.Logger
	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewWatcher(store *FileStore, logger providers.Logger) *Watcher {
	return &Watcher{
		store:  store,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start watches the store's directory; the file itself is swapped by rename,
// which a file-level watch would lose.
func (w *Watcher) Start(onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err = fw.Add(filepath.Dir(w.store.Path())); err != nil {
		fw.Close()
		return err
	}
	w.watcher = fw

	target := filepath.Clean(w.store.Path())
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				changed, err := w.store.Reload()
				if err != nil {
					w.logger.Warnf(providers.TypeApp, "Store file %s changed but could not be reloaded: %s", target, err)
					continue
				}
				if changed {
					w.logger.Infof(providers.TypeApp, "Store file %s changed externally, reloading", target)
					onChange()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.logger.Errorf(providers.TypeApp, "Store watcher error: %s", err)
			}
		}
	}()
	return nil
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		if w.watcher != nil {
			w.watcher.Close()
		}
		w.wg.Wait()
	})
}
