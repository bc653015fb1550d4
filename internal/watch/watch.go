// Package watch re-runs a callback whenever a single file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Handler is called after the watched file is written or re-created.
type Handler func(path string) error

// ErrorHandler receives errors returned by a Handler and non-fatal watcher
// errors. It may be nil.
type ErrorHandler func(err error)

// File watches path until ctx is cancelled, calling fn after every write or
// create event for it. The parent directory is watched so that files replaced
// by rename are still seen. Handler errors are passed to onErr and do not stop
// the watch.
func File(ctx context.Context, path string, fn Handler, onErr ErrorHandler) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // nothing to do on close failure

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	report := func(err error) {
		if onErr != nil && err != nil {
			onErr(err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			report(fn(target))
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			report(fmt.Errorf("watcher: %w", werr))
		}
	}
}

// relevant reports whether event is a write or create of target.
func relevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
