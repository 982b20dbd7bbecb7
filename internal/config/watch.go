package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/logger"
)

// Watch reloads the config file at path every time it is written and
// passes the result to fn. Files that fail to load or validate are logged
// and skipped. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temp file over the original are seen too.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	log := logger.Named("config").With(zap.String("path", target))
	log.Debug("watching config file")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := loadPath(target)
			if err != nil {
				log.Warn("ignoring config change", zap.Error(err))
				continue
			}
			log.Info("config reloaded")
			fn(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
