package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/embermark/flatbuffers/internal/schema"
)

func (e *emitter) vectorToWire(p *fieldPlan, src *jen.Statement) *jen.Statement {
	call, _ := schema.Visit[*jen.Statement](p.elem, vectorWriter{e: e, src: src})
	return call
}

// vectorWriter picks the runtime helper that writes a native slice of its
// element type. Vector and union elements are rejected by classify.
type vectorWriter struct {
	e   *emitter
	src *jen.Statement
}

func (v vectorWriter) prepend(kind schema.ScalarKind) *jen.Statement {
	return jen.Parens(jen.Op("*").Add(v.e.flatbuffers("Builder"))).Dot("Prepend" + kind.BuilderSuffix())
}

func (v vectorWriter) Scalar(t *schema.Scalar) *jen.Statement {
	if t.Kind == schema.KindUint8 {
		return jen.Id(idBuilder).Dot("CreateByteVector").Call(v.src)
	}

	return v.e.runtime("CreateScalarVector").Call(
		jen.Id(idBuilder),
		v.src,
		jen.Lit(t.Kind.Size()),
		v.prepend(t.Kind),
	)
}

func (v vectorWriter) Enum(t *schema.Enum) *jen.Statement {
	return v.e.runtime("CreateEnumVector").Call(
		jen.Id(idBuilder),
		v.src,
		jen.Lit(t.Def.Underlying.Size()),
		v.prepend(t.Def.Underlying),
	)
}

func (v vectorWriter) String(*schema.String) *jen.Statement {
	return v.e.runtime("CreateStringVector").Call(jen.Id(idBuilder), v.src)
}

func (v vectorWriter) Vector(*schema.Vector) *jen.Statement {
	return jen.Null()
}

func (v vectorWriter) Record(t *schema.Record) *jen.Statement {
	if t.Def.Fixed {
		return v.e.runtime("CreateStructVector").Call(
			jen.Id(idBuilder),
			v.src,
			jen.Lit(t.Def.ByteSize),
			jen.Lit(t.Def.MinAlign),
			v.method(t.Def),
		)
	}

	return v.e.runtime("CreateTableVector").Call(jen.Id(idBuilder), v.src, v.method(t.Def))
}

func (v vectorWriter) Union(*schema.Union) *jen.Statement {
	return jen.Null()
}

// method renders the ToWire method expression of a record type.
func (v vectorWriter) method(def *schema.RecordDef) *jen.Statement {
	if def.Options().ValueType {
		return v.e.recordType(def).Dot(idToWire)
	}

	return jen.Parens(jen.Op("*").Add(v.e.recordType(def))).Dot(idToWire)
}
