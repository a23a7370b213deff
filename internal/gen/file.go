package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/embermark/flatbuffers/internal/schema"
)

const headerComment = "Code generated by fbnative. DO NOT EDIT."

// File is the generated native code for one namespace of a schema file.
type File struct {
	// Path is relative to the working directory.
	Path      string
	Schema    *schema.Schema
	Namespace schema.Namespace
	Source    []byte

	// records are declared in the file, deps holds the records each of
	// them refers to.
	records []*schema.RecordDef
	deps    map[*schema.RecordDef][]*schema.RecordDef
}

// genFile assembles the file of namespace `ns` of schema `s`: enums, then
// structs, then tables, then the registration of every generated record.
// Nothing is returned for a file in which any record failed, and the
// records that did generate are failed with it.
func (g *Generator) genFile(s *schema.Schema, ns schema.Namespace) (*File, error) {
	f := jen.NewFilePathName(g.nativePkg(ns), g.nativePkgName(ns))
	f.HeaderComment(headerComment)

	e := &emitter{
		names:  g.names,
		f:      f,
		ns:     ns,
		logger: g.logger.With().Str("schema", s.Path).Str("namespace", ns.String()).Logger(),
	}

	empty := true

	for _, def := range s.Enums {
		if !def.Namespace.Equal(ns) || g.enums[def] {
			continue
		}

		g.enums[def] = true
		e.genEnumDecl(def)
		empty = false
	}

	var errs []error
	generated := make(map[*schema.RecordDef]bool)

	for _, fixed := range []bool{true, false} {
		for _, def := range s.Records {
			if def.Fixed != fixed || !def.Namespace.Equal(ns) {
				continue
			}

			ok, err := g.genRecord(e, def)
			if err != nil {
				errs = append(errs, err)
			}

			if ok {
				generated[def] = true
			}
		}
	}

	if len(errs) > 0 {
		for def := range generated {
			g.failed[def] = true
		}

		return nil, errors.Join(errs...)
	}

	if empty && len(generated) == 0 {
		return nil, nil
	}

	if len(generated) > 0 {
		e.genRegistrations(s.Records, generated)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf(`failed to render namespace "%s": %w`, ns.String(), err)
	}

	records := make([]*schema.RecordDef, 0, len(generated))
	for _, def := range s.Records {
		if generated[def] {
			records = append(records, def)
		}
	}

	return &File{
		Path:      path.Join(g.nativeDir(ns), s.Base+g.cfg.Native.Suffix),
		Schema:    s,
		Namespace: ns,
		Source:    buf.Bytes(),
		records:   records,
		deps:      e.deps,
	}, nil
}

// IsGenerated reports whether `source` starts with the header of generated
// native files.
func IsGenerated(source []byte) bool {
	return bytes.HasPrefix(source, []byte("// "+headerComment))
}

// genRegistrations emits the init function registering the native type of
// every record generated into the file, in declaration order.
func (e *emitter) genRegistrations(records []*schema.RecordDef, generated map[*schema.RecordDef]bool) {
	e.f.Func().Id("init").Params().BlockFunc(func(g *jen.Group) {
		for _, def := range records {
			if !generated[def] {
				continue
			}

			zero := jen.Id(e.recordName(def)).Values()
			if !def.Options().ValueType {
				zero = jen.Parens(jen.Op("*").Id(e.recordName(def))).Parens(jen.Nil())
			}

			g.Add(e.runtime("Register")).Call(jen.Lit(def.QualifiedName()), zero)
		}
	})
}

// Write writes the files under `workingDir`.
func Write(workingDir string, files []*File) error {
	for _, f := range files {
		filePath := filepath.Join(workingDir, filepath.FromSlash(f.Path))

		if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
			return err
		}

		if err := os.WriteFile(filePath, f.Source, 0600); err != nil {
			return fmt.Errorf(`failed to write file "%s": %w`, filePath, err)
		}
	}

	return nil
}
