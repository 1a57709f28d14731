package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calcfetti/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounce collapses the burst of events editors produce on a single save.
const debounce = 200 * time.Millisecond

// Watch calls onChange with freshly loaded settings whenever the settings
// file is written or replaced, until ctx is cancelled. The parent directory
// is created if needed and watched so atomic renames are seen too.
func (store *Store) Watch(ctx context.Context, logger zerolog.Logger, onChange func(preferences.Settings)) error {
	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch settings dir: %w", err)
	}

	go store.watchLoop(ctx, watcher, logger, onChange)
	return nil
}

func (store *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, logger zerolog.Logger, onChange func(preferences.Settings)) {
	defer watcher.Close()

	target := filepath.Clean(store.path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("settings watcher error")
		case <-pending:
			pending = nil
			settings, err := store.Load()
			if err != nil {
				logger.Warn().Err(err).Str("path", store.path).Msg("reload settings")
				continue
			}
			onChange(settings)
		}
	}
}
