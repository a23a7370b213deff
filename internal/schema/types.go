package schema

import "fmt"

type ScalarKind int

const (
	KindNone ScalarKind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

type scalarInfo struct {
	goName string
	size   int
	// suffix of the flatbuffers.Builder Prepend/Place methods.
	builder string
}

var scalarKinds = map[ScalarKind]scalarInfo{
	KindBool:    {"bool", 1, "Bool"},
	KindInt8:    {"int8", 1, "Int8"},
	KindUint8:   {"uint8", 1, "Uint8"},
	KindInt16:   {"int16", 2, "Int16"},
	KindUint16:  {"uint16", 2, "Uint16"},
	KindInt32:   {"int32", 4, "Int32"},
	KindUint32:  {"uint32", 4, "Uint32"},
	KindInt64:   {"int64", 8, "Int64"},
	KindUint64:  {"uint64", 8, "Uint64"},
	KindFloat32: {"float32", 4, "Float32"},
	KindFloat64: {"float64", 8, "Float64"},
}

// scalarNames maps the type names the schema parser emits, including the
// IDL aliases, to scalar kinds.
var scalarNames = map[string]ScalarKind{
	"bool":    KindBool,
	"byte":    KindInt8,
	"int8":    KindInt8,
	"ubyte":   KindUint8,
	"uint8":   KindUint8,
	"short":   KindInt16,
	"int16":   KindInt16,
	"ushort":  KindUint16,
	"uint16":  KindUint16,
	"int":     KindInt32,
	"int32":   KindInt32,
	"uint":    KindUint32,
	"uint32":  KindUint32,
	"long":    KindInt64,
	"int64":   KindInt64,
	"ulong":   KindUint64,
	"uint64":  KindUint64,
	"float":   KindFloat32,
	"float32": KindFloat32,
	"double":  KindFloat64,
	"float64": KindFloat64,
}

// ParseScalarKind returns the scalar kind named by `name` and false if
// `name` isn't a scalar type name.
func ParseScalarKind(name string) (ScalarKind, bool) {
	k, ok := scalarNames[name]
	return k, ok
}

func (k ScalarKind) Valid() bool {
	_, ok := scalarKinds[k]
	return ok
}

// GoName is the Go type used for the kind both in native and in wire code.
func (k ScalarKind) GoName() string {
	return scalarKinds[k].goName
}

// Size is the width of the kind in the wire format, in bytes.
func (k ScalarKind) Size() int {
	return scalarKinds[k].size
}

// BuilderSuffix is the suffix of the flatbuffers.Builder methods that write
// the kind, for example `Int32` for `PrependInt32`.
func (k ScalarKind) BuilderSuffix() string {
	return scalarKinds[k].builder
}

func (k ScalarKind) IsInteger() bool {
	return k != KindBool && k != KindFloat32 && k != KindFloat64 && k.Valid()
}

func (k ScalarKind) String() string {
	if info, ok := scalarKinds[k]; ok {
		return info.goName
	}
	return fmt.Sprintf("ScalarKind(%d)", int(k))
}

// Type is a reference to a schema type. The set of implementations is
// closed: Scalar, Enum, String, Vector, Record and Union.
type Type interface {
	String() string
	isType()
}

type Scalar struct {
	Kind ScalarKind
}

type Enum struct {
	Def *EnumDef
}

type String struct{}

type Vector struct {
	Elem Type
}

type Record struct {
	Def *RecordDef
}

// Union is produced by the parser for union typed fields. No conversion
// exists for it; the generator reports it as unrepresentable.
type Union struct {
	Def *UnionDef
}

func (*Scalar) isType() {}
func (*Enum) isType()   {}
func (*String) isType() {}
func (*Vector) isType() {}
func (*Record) isType() {}
func (*Union) isType()  {}

func (t *Scalar) String() string { return t.Kind.String() }
func (t *Enum) String() string   { return t.Def.QualifiedName() }
func (t *String) String() string { return "string" }
func (t *Vector) String() string { return "[" + t.Elem.String() + "]" }
func (t *Record) String() string { return t.Def.QualifiedName() }
func (t *Union) String() string  { return t.Def.QualifiedName() }

// TypeVisitor has one method per Type implementation. Implementing it is
// how the generator dispatches on types: a new Type variant doesn't compile
// until every visitor handles it.
type TypeVisitor[R any] interface {
	Scalar(t *Scalar) R
	Enum(t *Enum) R
	String(t *String) R
	Vector(t *Vector) R
	Record(t *Record) R
	Union(t *Union) R
}

// Visit calls the method of `v` matching the dynamic type of `t`. The bool
// result is false for a nil type.
func Visit[R any](t Type, v TypeVisitor[R]) (R, bool) {
	switch t := t.(type) {
	case *Scalar:
		return v.Scalar(t), true
	case *Enum:
		return v.Enum(t), true
	case *String:
		return v.String(t), true
	case *Vector:
		return v.Vector(t), true
	case *Record:
		return v.Record(t), true
	case *Union:
		return v.Union(t), true
	}

	var zero R
	return zero, false
}
