package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the document the schema parser writes for one schema file.
type File struct {
	Namespace string      `yaml:"namespace"`
	Includes  []string    `yaml:"includes"`
	Enums     []EnumDoc   `yaml:"enums"`
	Unions    []UnionDoc  `yaml:"unions"`
	Records   []RecordDoc `yaml:"records"`
}

type EnumDoc struct {
	Name       string            `yaml:"name"`
	Namespace  *string           `yaml:"namespace"`
	Underlying string            `yaml:"underlying"`
	Doc        []string          `yaml:"doc"`
	Attributes map[string]string `yaml:"attributes"`
	Values     []EnumValDoc      `yaml:"values"`
}

type EnumValDoc struct {
	Name  string   `yaml:"name"`
	Value *int64   `yaml:"value"`
	Doc   []string `yaml:"doc"`
}

type UnionDoc struct {
	Name      string  `yaml:"name"`
	Namespace *string `yaml:"namespace"`
}

type RecordDoc struct {
	Name       string            `yaml:"name"`
	Namespace  *string           `yaml:"namespace"`
	Fixed      bool              `yaml:"fixed"`
	Doc        []string          `yaml:"doc"`
	Attributes map[string]string `yaml:"attributes"`
	Fields     []FieldDoc        `yaml:"fields"`
}

type FieldDoc struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	Default    string            `yaml:"default"`
	Deprecated bool              `yaml:"deprecated"`
	Offset     *int              `yaml:"offset"`
	Doc        []string          `yaml:"doc"`
	Attributes map[string]string `yaml:"attributes"`
}

type AbsoluteFilePath = string

// Loader reads schema files. Every file is read once per Loader, so
// definitions reachable from several files through includes are shared.
type Loader struct {
	files    map[AbsoluteFilePath]*fileContext
	order    []AbsoluteFilePath
	layouter *layouter
}

type fileContext struct {
	schema   *Schema
	types    map[*FieldDef]string
	explicit []*FieldDef
	resolved bool
}

func NewLoader() *Loader {
	return &Loader{
		files:    make(map[AbsoluteFilePath]*fileContext),
		layouter: newLayouter(),
	}
}

// Load reads the files in `paths` and everything they include. The returned
// schemas are in the order of `paths`.
func (l *Loader) Load(paths []AbsoluteFilePath) ([]*Schema, error) {
	schemas := make([]*Schema, 0, len(paths))

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}

		fc, err := l.readFile(abs, nil)
		if err != nil {
			return nil, err
		}

		schemas = append(schemas, fc.schema)
	}

	// Struct layouts depend on nested structs from any file, so every file
	// is resolved before anything is laid out.
	for _, p := range l.order {
		if err := l.resolveFile(l.files[p]); err != nil {
			return nil, err
		}
	}

	for _, p := range l.order {
		if err := l.layoutFile(l.files[p]); err != nil {
			return nil, err
		}
	}

	return schemas, nil
}

// Load is a shorthand for loading with a fresh Loader.
func Load(paths ...AbsoluteFilePath) ([]*Schema, error) {
	return NewLoader().Load(paths)
}

func (l *Loader) readFile(filePath AbsoluteFilePath, stack []AbsoluteFilePath) (*fileContext, error) {
	if fc, ok := l.files[filePath]; ok {
		return fc, nil
	}

	for _, p := range stack {
		if p == filePath {
			return nil, fmt.Errorf(`include cycle: %s -> %s`, strings.Join(stack, " -> "), filePath)
		}
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read schema file "%s": %w`, filePath, err)
	}

	var doc File
	if err := yaml.Unmarshal(fileData, &doc); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal schema file "%s": %w`, filePath, err)
	}

	fc, err := newFileContext(filePath, &doc)
	if err != nil {
		return nil, fmt.Errorf(`invalid schema file "%s": %w`, filePath, err)
	}

	for _, f := range fc.explicit {
		l.layouter.explicit[f] = true
	}

	stack = append(stack, filePath)
	for _, inc := range doc.Includes {
		incPath := inc
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(filepath.Dir(filePath), inc)
		}

		incCtx, err := l.readFile(filepath.Clean(incPath), stack)
		if err != nil {
			return nil, err
		}

		fc.schema.Includes = append(fc.schema.Includes, incCtx.schema)
	}

	l.files[filePath] = fc
	l.order = append(l.order, filePath)

	return fc, nil
}

func newFileContext(filePath AbsoluteFilePath, doc *File) (*fileContext, error) {
	base := filepath.Base(filePath)

	fc := &fileContext{
		schema: &Schema{
			Path: filePath,
			Base: strings.TrimSuffix(base, filepath.Ext(base)),
		},
		types: make(map[*FieldDef]string),
	}

	defaultNs := ParseNamespace(doc.Namespace)
	nsOf := func(ns *string) Namespace {
		if ns != nil {
			return ParseNamespace(*ns)
		}
		return defaultNs
	}

	for _, e := range doc.Enums {
		def, err := newEnumDef(e, nsOf(e.Namespace), filePath)
		if err != nil {
			return nil, err
		}

		fc.schema.Enums = append(fc.schema.Enums, def)
	}

	for _, u := range doc.Unions {
		fc.schema.Unions = append(fc.schema.Unions, &UnionDef{
			Name:      u.Name,
			Namespace: nsOf(u.Namespace),
			File:      filePath,
		})
	}

	for _, r := range doc.Records {
		if len(r.Name) == 0 {
			return nil, fmt.Errorf("record without a name")
		}

		def := &RecordDef{
			Name:       r.Name,
			Namespace:  nsOf(r.Namespace),
			Fixed:      r.Fixed,
			Doc:        r.Doc,
			Attributes: Attributes(r.Attributes),
			File:       filePath,
		}

		for _, f := range r.Fields {
			field := &FieldDef{
				Name:       f.Name,
				Deprecated: f.Deprecated,
				Default:    f.Default,
				Doc:        f.Doc,
				Attributes: Attributes(f.Attributes),
			}

			if f.Offset != nil {
				field.Offset = *f.Offset
				fc.explicit = append(fc.explicit, field)
			}

			fc.types[field] = f.Type
			def.Fields = append(def.Fields, field)
		}

		fc.schema.Records = append(fc.schema.Records, def)
	}

	return fc, nil
}

func newEnumDef(e EnumDoc, ns Namespace, filePath AbsoluteFilePath) (*EnumDef, error) {
	kind, ok := ParseScalarKind(e.Underlying)
	if !ok || !kind.IsInteger() {
		return nil, fmt.Errorf(`enum "%s" has invalid underlying type "%s"`, e.Name, e.Underlying)
	}

	def := &EnumDef{
		Name:       e.Name,
		Namespace:  ns,
		Underlying: kind,
		Doc:        e.Doc,
		Attributes: Attributes(e.Attributes),
		File:       filePath,
	}

	// Values without an explicit value continue from the previous one.
	next := int64(0)
	for _, v := range e.Values {
		value := next
		if v.Value != nil {
			value = *v.Value
		}

		def.Values = append(def.Values, EnumVal{
			Name:  v.Name,
			Value: value,
			Doc:   v.Doc,
		})

		next = value + 1
	}

	return def, nil
}

func (l *Loader) resolveFile(fc *fileContext) error {
	if fc.resolved {
		return nil
	}

	visible := append([]*Schema{fc.schema}, fc.schema.IncludedRecursive()...)
	ix := newIndex(visible...)

	for _, r := range fc.schema.Records {
		for _, f := range r.Fields {
			t, err := ix.ResolveType(fc.types[f], r.Namespace)
			if err != nil {
				return fmt.Errorf(`in schema file "%s", field "%s" of "%s": %w`, fc.schema.Path, f.Name, r.QualifiedName(), err)
			}

			f.Type = t
		}
	}

	fc.resolved = true
	return nil
}

func (l *Loader) layoutFile(fc *fileContext) error {
	for _, r := range fc.schema.Records {
		if err := l.layouter.layout(r); err != nil {
			return fmt.Errorf(`in schema file "%s": %w`, fc.schema.Path, err)
		}
	}

	return nil
}
