package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

var watchedExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Watch runs Run once and again whenever the config file or a schema file
// is written, until `ctx` is done. Failed runs are logged and watching
// continues.
func Watch(ctx context.Context, s Settings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	logger := s.Logger

	run := func() {
		if err := Run(s); err != nil {
			logger.Error().Err(err).Msg("generation failed")
		}

		// Directories of schema files added since the last run are picked
		// up here. Editors replace files on save, so directories are
		// watched rather than files.
		for _, dir := range watchDirs(s) {
			if err := watcher.Add(dir); err != nil {
				logger.Error().Err(err).Str("dir", dir).Msg("failed to watch directory")
			}
		}
	}

	run()
	logger.Info().Str("dir", s.WorkingDir).Msg("watching schemas for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !watchedExts[filepath.Ext(event.Name)] {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("schema changed")

				run()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("file watcher error")

		case <-ctx.Done():
			return nil
		}
	}
}

// watchDirs returns the directory of the config file and of every schema
// file the config matches and includes.
func watchDirs(s Settings) []string {
	dirs := []string{filepath.Dir(s.configPath())}
	seen := map[string]bool{dirs[0]: true}

	add := func(path string) {
		if dir := filepath.Dir(path); !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	cfg, err := readConfig(s)
	if err != nil {
		return dirs
	}

	schemas, err := readSchemas(s, *cfg)
	if err != nil {
		return dirs
	}

	for _, sc := range schemas {
		add(sc.Path)

		for _, inc := range sc.IncludedRecursive() {
			add(inc.Path)
		}
	}

	return dirs
}
