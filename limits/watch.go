package limits

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path into the table and reloads it on every change until ctx
// is done. Reloads merge entries the way Load does; a reload that fails to
// parse keeps the previous entries and is logged. The initial load happens
// before Watch returns.
func (t *Table) Watch(ctx context.Context, path string) error {
	if err := t.LoadFile(path); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("limits: watch: %w", err)
	}
	// Watch the directory (more reliable than watching the file directly).
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("limits: watch %q: %w", path, err)
	}
	go t.watchLoop(ctx, watcher, path)
	return nil
}

func (t *Table) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()
	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := t.LoadFile(path); err != nil {
				slog.Warn("limits: reload failed, keeping previous table",
					"path", path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("limits: watcher error", "path", path, "error", err)
		}
	}
}
