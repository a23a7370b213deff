package gen

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/embermark/flatbuffers/internal/schema"
	"github.com/rs/zerolog"
)

// emitter writes the declarations of one namespace of one schema file.
// Qualified references register the import names the file uses.
type emitter struct {
	names
	f      *jen.File
	ns     schema.Namespace
	logger zerolog.Logger

	// cur is the record being emitted. deps holds the records each emitted
	// record refers to.
	cur  *schema.RecordDef
	deps map[*schema.RecordDef][]*schema.RecordDef
}

func (e *emitter) nativeQual(ns schema.Namespace, name string) *jen.Statement {
	pkg := e.nativePkg(ns)
	switch {
	case ns.Equal(e.ns):
	case e.nativePkgRenamed(ns):
		e.f.ImportAlias(pkg, e.nativePkgName(ns))
	default:
		e.f.ImportName(pkg, e.nativePkgName(ns))
	}

	return jen.Qual(pkg, name)
}

func (e *emitter) wireQual(ns schema.Namespace, name string) *jen.Statement {
	pkg := e.wirePkg(ns)
	e.f.ImportAlias(pkg, e.wireAlias(ns))
	return jen.Qual(pkg, name)
}

func (e *emitter) runtime(name string) *jen.Statement {
	e.f.ImportName(e.cfg.Runtime.Path, "native")
	return jen.Qual(e.cfg.Runtime.Path, name)
}

func (e *emitter) flatbuffers(name string) *jen.Statement {
	e.f.ImportName(flatbuffersPath, "flatbuffers")
	return jen.Qual(flatbuffersPath, name)
}

func (e *emitter) recordType(def *schema.RecordDef) *jen.Statement {
	e.dependOn(def)
	return e.nativeQual(def.Namespace, e.recordName(def))
}

func (e *emitter) fromWire(def *schema.RecordDef) *jen.Statement {
	e.dependOn(def)
	return e.nativeQual(def.Namespace, e.fromWireName(def))
}

func (e *emitter) dependOn(def *schema.RecordDef) {
	if e.cur == nil || e.cur == def {
		return
	}

	for _, d := range e.deps[e.cur] {
		if d == def {
			return
		}
	}

	if e.deps == nil {
		e.deps = make(map[*schema.RecordDef][]*schema.RecordDef)
	}
	e.deps[e.cur] = append(e.deps[e.cur], def)
}

func (e *emitter) wireType(def *schema.RecordDef) *jen.Statement {
	return e.wireQual(def.Namespace, def.Name)
}

// nativeType renders the native storage type of a schema type. Records are
// held by pointer unless they are value types or a struct nested in a
// struct.
type nativeType struct {
	e        *emitter
	byteEnum bool
	inFixed  bool
}

func (v nativeType) Scalar(t *schema.Scalar) *jen.Statement {
	return jen.Id(t.Kind.GoName())
}

func (v nativeType) Enum(t *schema.Enum) *jen.Statement {
	name := v.e.nativeQual(t.Def.Namespace, v.e.enumName(t.Def))
	if v.byteEnum {
		return v.e.runtime("ByteEnum").Types(name)
	}

	return name
}

func (v nativeType) String(*schema.String) *jen.Statement {
	return jen.String()
}

func (v nativeType) Vector(t *schema.Vector) *jen.Statement {
	elem, _ := schema.Visit[*jen.Statement](t.Elem, nativeType{e: v.e, byteEnum: v.byteEnum})
	return jen.Index().Add(elem)
}

func (v nativeType) Record(t *schema.Record) *jen.Statement {
	name := v.e.recordType(t.Def)
	if (t.Def.Fixed && v.inFixed) || t.Def.Options().ValueType {
		return name
	}

	return jen.Op("*").Add(name)
}

// Unions are rejected by classify before any type is rendered.
func (v nativeType) Union(*schema.Union) *jen.Statement {
	return jen.Null()
}

// fieldPlan is a classified field of a record that code can be generated
// for.
type fieldPlan struct {
	def    *schema.FieldDef
	goName string
	cat    Category
	// elem and elemCat describe the elements of vector fields.
	elem     schema.Type
	elemCat  Category
	byteEnum bool
	opts     schema.FieldOptions
}

func (p *fieldPlan) nativeType(e *emitter, parent *schema.RecordDef) *jen.Statement {
	t, _ := schema.Visit[*jen.Statement](p.def.Type, nativeType{e: e, byteEnum: p.byteEnum, inFixed: parent.Fixed})
	return t
}

// enumDef returns the enum of an enum field or of the elements of an enum
// vector field.
func (p *fieldPlan) enumDef() *schema.EnumDef {
	t := p.def.Type
	if p.elem != nil {
		t = p.elem
	}

	if enum, ok := t.(*schema.Enum); ok {
		return enum.Def
	}

	return nil
}

// planRecord classifies the active fields of `def`. The returned error joins
// one GenError per field that has no conversion.
func (e *emitter) planRecord(def *schema.RecordDef) ([]*fieldPlan, error) {
	plans := make([]*fieldPlan, 0, len(def.Fields))
	var errs []error

	for _, f := range def.ActiveFields() {
		p, err := e.planField(def, f)
		if err != nil {
			errs = append(errs, &GenError{
				Record: def.QualifiedName(),
				Field:  f.Name,
				Err:    err,
			})
			continue
		}

		plans = append(plans, p)
	}

	return plans, errors.Join(errs...)
}

func (e *emitter) planField(parent *schema.RecordDef, f *schema.FieldDef) (*fieldPlan, error) {
	cat, err := classify(f.Type)
	if err != nil {
		return nil, err
	}

	p := &fieldPlan{
		def:    f,
		goName: camel(f.Name),
		cat:    cat,
		opts:   f.Options(),
	}

	if parent.Fixed {
		switch cat {
		case CategoryScalar, CategoryEnum, CategoryFixedRecord:
		default:
			return nil, fmt.Errorf("%w %s in a struct", ErrUnrepresentable, typeName(f.Type))
		}
	}

	if vec, ok := f.Type.(*schema.Vector); ok {
		p.elem = vec.Elem
		p.elemCat, _ = classify(vec.Elem)
	}

	enum := p.enumDef()
	requested := p.opts.ByteEnum || (enum != nil && enum.Options().ByteEnum)

	switch {
	case !requested:
	case enum == nil:
		e.logger.Warn().
			Str("record", parent.QualifiedName()).
			Str("field", f.Name).
			Msg("byte_enum on a field that is not an enum, ignoring")
	case !isByteEnum(enum):
		e.logger.Warn().
			Str("record", parent.QualifiedName()).
			Str("field", f.Name).
			Str("enum", enum.QualifiedName()).
			Stringer("underlying", enum.Underlying).
			Msg("byte_enum on an enum wider than 8 bits, ignoring")
	default:
		p.byteEnum = true
	}

	return p, nil
}

func isByteEnum(enum *schema.EnumDef) bool {
	return enum.Underlying.Size() == 1
}

// fieldByteEnum reports whether field `f` holds boxed enum values, without
// the warnings planField logs.
func fieldByteEnum(f *schema.FieldDef) bool {
	t := f.Type
	if vec, ok := t.(*schema.Vector); ok {
		t = vec.Elem
	}

	enum, ok := t.(*schema.Enum)
	if !ok || !isByteEnum(enum.Def) {
		return false
	}

	return f.Options().ByteEnum || enum.Def.Options().ByteEnum
}
