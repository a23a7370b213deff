package gen

import (
	"errors"
	"fmt"

	"github.com/embermark/flatbuffers/internal/config"
	"github.com/embermark/flatbuffers/internal/schema"
	"github.com/rs/zerolog"
)

// Generator renders native code for loaded schemas. Every definition is
// generated at most once per Generator, also when it's reachable from
// several schema files.
type Generator struct {
	names
	logger zerolog.Logger

	records map[*schema.RecordDef]bool
	enums   map[*schema.EnumDef]bool
	files   map[string]bool
	// failed holds the records that produced no code, also those dropped
	// with the rest of their schema file.
	failed  map[*schema.RecordDef]bool
}

func NewGenerator(cfg config.Config, logger zerolog.Logger) *Generator {
	return &Generator{
		names:   names{cfg: cfg},
		logger:  logger,
		records: make(map[*schema.RecordDef]bool),
		enums:   make(map[*schema.EnumDef]bool),
		files:   make(map[string]bool),
		failed:  make(map[*schema.RecordDef]bool),
	}
}

// GenerateCode is a shorthand for generating with a fresh Generator.
func GenerateCode(cfg config.Config, logger zerolog.Logger, schemas []*schema.Schema) ([]*File, error) {
	return NewGenerator(cfg, logger).GenerateCode(schemas)
}

// GenerateCode renders one file per namespace of every schema in `schemas`,
// and of the schemas they include when `genAll` is set. A schema file in
// which any record failed produces no files at all, and neither does one
// whose records refer to a record that failed. The errors are joined into
// the returned error, so the returned files are valid even when the error
// isn't nil.
func (g *Generator) GenerateCode(schemas []*schema.Schema) ([]*File, error) {
	outputs := make([]*schemaOutput, 0, len(schemas))
	var errs []error

	for _, s := range g.targets(schemas) {
		out := &schemaOutput{schema: s}

		for _, ns := range s.Namespaces() {
			key := s.Path + "#" + ns.String()
			if g.files[key] {
				continue
			}
			g.files[key] = true

			f, err := g.genFile(s, ns)
			if err != nil {
				out.errs = append(out.errs, err)
				continue
			}

			if f != nil {
				out.files = append(out.files, f)
			}
		}

		if len(out.errs) > 0 {
			g.drop(out)
		}

		outputs = append(outputs, out)
	}

	// Dropping a schema's files fails its records, which can fail the
	// schemas referring to them in turn.
	for changed := true; changed; {
		changed = false

		for _, out := range outputs {
			if len(out.files) == 0 {
				continue
			}

			if err := g.failedDependency(out); err != nil {
				out.errs = append(out.errs, err)
				g.drop(out)
				changed = true
			}
		}
	}

	files := make([]*File, 0, len(outputs))

	for _, out := range outputs {
		for _, err := range out.errs {
			errs = append(errs, fmt.Errorf(`in schema file "%s": %w`, out.schema.Path, err))
		}

		for _, f := range out.files {
			g.logger.Debug().Str("file", f.Path).Msg("generated file")
			files = append(files, f)
		}
	}

	return files, errors.Join(errs...)
}

// schemaOutput is what one schema file generated.
type schemaOutput struct {
	schema *schema.Schema
	files  []*File
	errs   []error
}

// drop discards the files of `out` and fails the records they declare.
func (g *Generator) drop(out *schemaOutput) {
	for _, f := range out.files {
		for _, def := range f.records {
			g.failed[def] = true
		}
	}

	out.files = nil
}

// failedDependency returns the error of the first record of `out` that
// refers to a failed record.
func (g *Generator) failedDependency(out *schemaOutput) error {
	for _, f := range out.files {
		for _, def := range f.records {
			for _, dep := range f.deps[def] {
				if g.failed[dep] {
					return &GenError{
						Record: def.QualifiedName(),
						Err:    fmt.Errorf(`%w "%s"`, ErrFailedDependency, dep.QualifiedName()),
					}
				}
			}
		}
	}

	return nil
}

func (g *Generator) targets(schemas []*schema.Schema) []*schema.Schema {
	if !g.cfg.GenAll {
		return schemas
	}

	out := make([]*schema.Schema, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, s)
		out = append(out, s.IncludedRecursive()...)
	}

	return out
}

// genRecord emits the declaration and conversions of `def`. The bool result
// reports whether code was emitted; a record that fails emits nothing.
func (g *Generator) genRecord(e *emitter, def *schema.RecordDef) (bool, error) {
	if g.records[def] {
		return false, nil
	}
	g.records[def] = true

	plans, err := e.planRecord(def)
	if err != nil {
		g.failed[def] = true
		return false, err
	}

	e.cur = def
	e.genRecordDecl(def, plans)
	e.genFromWire(def, plans)
	e.genToWire(def, plans)
	e.cur = nil

	e.logger.Debug().
		Str("record", def.QualifiedName()).
		Str("native", e.recordName(def)).
		Int("fields", len(plans)).
		Msg("generated record")

	return true, nil
}
