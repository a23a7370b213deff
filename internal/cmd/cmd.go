package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/embermark/flatbuffers/internal/config"
	"github.com/embermark/flatbuffers/internal/gen"
	"github.com/embermark/flatbuffers/internal/schema"
	"github.com/rs/zerolog"
)

const configFile = "fbnative.yaml"

type Settings struct {
	WorkingDir string
	// ConfigFile is relative to WorkingDir, `fbnative.yaml` when empty.
	ConfigFile string
	// Check compares the generated code with the files on disk instead of
	// writing it.
	Check bool
	// Verbose overrides the configured log level with debug.
	Verbose bool
	Logger  zerolog.Logger
	// Out receives the check report.
	Out io.Writer
}

func (s Settings) configPath() string {
	name := s.ConfigFile
	if len(name) == 0 {
		name = configFile
	}

	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(s.WorkingDir, name)
}

// Run generates the native code configured in the working directory and
// writes it, or checks it with `Check`. Files of schemas that generated
// without errors are written even when others fail.
func Run(s Settings) error {
	cfg, err := readConfig(s)
	if err != nil {
		return err
	}

	logger, err := configureLogger(s, cfg)
	if err != nil {
		return err
	}

	schemas, err := readSchemas(s, *cfg)
	if err != nil {
		return err
	}

	files, genErr := gen.GenerateCode(*cfg, logger, schemas)

	if s.Check {
		// Files of failed schemas aren't rendered, they'd all look orphaned.
		orphans := genErr == nil
		return errors.Join(genErr, check(s, *cfg, files, orphans))
	}

	if err := gen.Write(s.WorkingDir, files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info().Str("file", f.Path).Msg("wrote file")
	}

	return genErr
}

func readConfig(s Settings) (*config.Config, error) {
	return config.Read(s.configPath())
}

func configureLogger(s Settings, cfg *config.Config) (zerolog.Logger, error) {
	if s.Verbose {
		return s.Logger.Level(zerolog.DebugLevel), nil
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return s.Logger, err
	}

	return s.Logger.Level(level), nil
}

// readSchemas loads the schema files matched by the globs of `cfg.Schemas`
// and everything they include.
func readSchemas(s Settings, cfg config.Config) ([]*schema.Schema, error) {
	paths, err := schemaFiles(s, cfg)
	if err != nil {
		return nil, err
	}

	schemas, err := schema.NewLoader().Load(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to read schemas: %w", err)
	}

	return schemas, nil
}

func schemaFiles(s Settings, cfg config.Config) ([]string, error) {
	paths := make([]string, 0)
	seen := make(map[string]bool)

	for _, c := range cfg.Schemas {
		path := filepath.Join(s.WorkingDir, c.Path)

		files, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve schema files using glob "%s": %w`, c.Path, err)
		}

		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				paths = append(paths, f)
			}
		}
	}

	if len(paths) == 0 {
		return nil, errors.New("no schema files matched the configured paths")
	}

	return paths, nil
}
