package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/logger"
)

// Watch monitors path and calls onChange with the reloaded Config each time
// the file is written. It blocks until ctx is cancelled.
//
// A reload that fails validation is logged and skipped; the caller keeps
// whatever config it had.
func Watch(ctx context.Context, path string, log logger.Logger, onChange func(*Config)) error {
	if log == nil {
		log = logger.Noop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't start the config watcher",
			"Run without --watch, or raise your inotify limits.")
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write to temp, rename over) still
	// produce events for the target name.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't watch "+path,
			"Check the file's directory exists and is readable.")
	}

	log.Debug("watching %s for changes", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(target)
			if err != nil {
				log.Warn("config reload failed, keeping previous config: %v", err)
				continue
			}

			log.Info("config reloaded from %s", target)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("config watcher: %v", err)
		}
	}
}
