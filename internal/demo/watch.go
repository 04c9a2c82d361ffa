package demo

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads the page file whenever it changes on disk and blocks until
// ctx is done. Apps serving the embedded page have nothing to watch and
// return immediately. Listeners wired on a replaced tree are unreachable
// afterwards; this is a development convenience, not a production path.
func (a *App) Watch(ctx context.Context) error {
	if a.pagePath == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	// Watch the directory: editors replace files instead of writing in place.
	if err := w.Add(filepath.Dir(a.pagePath)); err != nil {
		return errors.Wrap(err, "watch page dir")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(a.pagePath) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			a.mu.Lock()
			err := a.load()
			a.mu.Unlock()
			if err != nil {
				a.log.WithError(err).Warn("page reload failed")
				continue
			}
			a.log.WithField("page", a.pagePath).Info("page reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.WithError(err).Warn("watch error")
		}
	}
}
