package schema

import "strings"

type Namespace []string

func ParseNamespace(s string) Namespace {
	if len(s) == 0 {
		return nil
	}

	return Namespace(strings.Split(s, "."))
}

func (ns Namespace) String() string {
	return strings.Join(ns, ".")
}

func (ns Namespace) Equal(other Namespace) bool {
	if len(ns) != len(other) {
		return false
	}

	for i := range ns {
		if ns[i] != other[i] {
			return false
		}
	}

	return true
}

type Attributes map[string]string

func (a Attributes) Lookup(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

type EnumVal struct {
	Name  string
	Value int64
	Doc   []string
}

type EnumDef struct {
	Name       string
	Namespace  Namespace
	Underlying ScalarKind
	Values     []EnumVal
	Doc        []string
	Attributes Attributes

	// File is the absolute path of the schema file that declared the enum.
	File string
}

func (d *EnumDef) QualifiedName() string {
	return qualify(d.Namespace, d.Name)
}

type UnionDef struct {
	Name      string
	Namespace Namespace
	File      string
}

func (d *UnionDef) QualifiedName() string {
	return qualify(d.Namespace, d.Name)
}

type FieldDef struct {
	Name       string
	Type       Type
	Deprecated bool
	Default    string
	Doc        []string
	Attributes Attributes

	// Offset is the vtable slot offset of a table field or the byte offset
	// of a struct field.
	Offset int
}

// RecordDef is a struct (Fixed) or a table.
type RecordDef struct {
	Name       string
	Namespace  Namespace
	Fixed      bool
	Fields     []*FieldDef
	Doc        []string
	Attributes Attributes

	// ByteSize and MinAlign describe the inline layout of a struct.
	ByteSize int
	MinAlign int

	File string
}

func (d *RecordDef) QualifiedName() string {
	return qualify(d.Namespace, d.Name)
}

// ActiveFields returns the fields that aren't deprecated, in declaration
// order.
func (d *RecordDef) ActiveFields() []*FieldDef {
	fields := make([]*FieldDef, 0, len(d.Fields))

	for _, f := range d.Fields {
		if !f.Deprecated {
			fields = append(fields, f)
		}
	}

	return fields
}

// Schema is a single loaded schema file.
type Schema struct {
	// Path is the absolute path of the schema file.
	Path string
	// Base is the file name without directory and extension.
	Base     string
	Enums    []*EnumDef
	Unions   []*UnionDef
	Records  []*RecordDef
	Includes []*Schema
}

// Namespaces returns the namespaces declared in the file, in the order they
// first appear.
func (s *Schema) Namespaces() []Namespace {
	out := make([]Namespace, 0, 1)
	seen := make(map[string]bool)

	add := func(ns Namespace) {
		if !seen[ns.String()] {
			seen[ns.String()] = true
			out = append(out, ns)
		}
	}

	for _, e := range s.Enums {
		add(e.Namespace)
	}

	for _, r := range s.Records {
		add(r.Namespace)
	}

	return out
}

// IncludedRecursive returns every schema reachable through includes, each
// once, depth first.
func (s *Schema) IncludedRecursive() []*Schema {
	out := make([]*Schema, 0)
	seen := map[string]bool{s.Path: true}

	var walk func(*Schema)
	walk = func(cur *Schema) {
		for _, inc := range cur.Includes {
			if seen[inc.Path] {
				continue
			}

			seen[inc.Path] = true
			out = append(out, inc)
			walk(inc)
		}
	}

	walk(s)
	return out
}

func qualify(ns Namespace, name string) string {
	if len(ns) == 0 {
		return name
	}

	return ns.String() + "." + name
}
