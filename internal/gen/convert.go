package gen

import (
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/embermark/flatbuffers/internal/schema"
)

const (
	idRecv    = "o"
	idWire    = "w"
	idBuilder = "b"
	idIndex   = "j"
	idElem    = "x"
)

// sel renders the selector expression `path[0].path[1]...`.
func sel(path ...string) *jen.Statement {
	s := jen.Id(path[0])
	for _, p := range path[1:] {
		s = s.Dot(p)
	}
	return s
}

func offsetVar(p *fieldPlan) string {
	return firstLower(p.goName) + "Offset"
}

// genFromWire generates `<Native>FromWire`, which copies a wire record into
// a new native record. A nil wire record becomes nil or the zero value.
func (e *emitter) genFromWire(def *schema.RecordDef, plans []*fieldPlan) {
	name := e.recordName(def)
	valueType := def.Options().ValueType

	ret := jen.Op("*").Id(name)
	if valueType {
		ret = jen.Id(name)
	}

	e.f.Func().Id(e.fromWireName(def)).Params(
		jen.Id(idWire).Op("*").Add(e.wireType(def)),
	).Add(ret).BlockFunc(func(g *jen.Group) {
		if valueType {
			g.If(jen.Id(idWire).Op("==").Nil()).Block(jen.Return(jen.Id(name).Values()))
			g.Empty()
			g.Id(idRecv).Op(":=").Id(name).Values()
		} else {
			g.If(jen.Id(idWire).Op("==").Nil()).Block(jen.Return(jen.Nil()))
			g.Empty()
			g.Id(idRecv).Op(":=").Op("&").Id(name).Values()
		}

		for _, p := range plans {
			e.genReadField(g, def, p)
		}

		g.Empty()
		g.Return(jen.Id(idRecv))
	})
	e.f.Line()
}

func (e *emitter) genReadField(g *jen.Group, parent *schema.RecordDef, p *fieldPlan) {
	dst := func() *jen.Statement { return sel(idRecv, p.goName) }
	get := func() *jen.Statement { return sel(idWire, p.goName) }

	switch p.cat {
	case CategoryScalar:
		g.Add(dst()).Op("=").Add(e.readScalar(parent, p))
	case CategoryEnum:
		g.Add(dst()).Op("=").Add(e.enumFromWire(p.def.Type.(*schema.Enum).Def, p.byteEnum, get().Call()))
	case CategoryString:
		g.Add(dst()).Op("=").String().Call(get().Call())
	case CategoryFixedRecord, CategoryVariableRecord:
		nested := p.def.Type.(*schema.Record).Def
		read := e.fromWire(nested).Call(get().Call(jen.Nil()))

		// Structs in structs are held by value.
		if parent.Fixed && !nested.Options().ValueType {
			read = jen.Op("*").Add(read)
		}

		g.Add(dst()).Op("=").Add(read)
	case CategoryVector:
		g.Add(dst()).Op("=").Make(p.nativeType(e, parent), sel(idWire, p.goName+"Length").Call())
		g.For(jen.Id(idIndex).Op(":=").Range().Add(dst())).BlockFunc(func(g *jen.Group) {
			e.genReadElem(g, p)
		})
	}
}

func (e *emitter) readScalar(parent *schema.RecordDef, p *fieldPlan) *jen.Statement {
	if p.def.Type.(*schema.Scalar).Kind != schema.KindBool {
		return sel(idWire, p.goName).Call()
	}

	table := sel(idWire, idTable).Call()

	if parent.Fixed {
		return e.runtime("StructBool").Call(table, jen.Lit(p.def.Offset))
	}

	def, _ := strconv.ParseBool(p.def.Default)
	return e.runtime("TableBool").Call(table, jen.Lit(p.def.Offset), jen.Lit(def))
}

func (e *emitter) enumFromWire(def *schema.EnumDef, boxed bool, v *jen.Statement) *jen.Statement {
	conv := e.nativeQual(def.Namespace, e.enumName(def)).Call(v)
	if boxed {
		return e.runtime("BoxEnum").Call(conv)
	}

	return conv
}

func (e *emitter) genReadElem(g *jen.Group, p *fieldPlan) {
	dst := sel(idRecv, p.goName).Index(jen.Id(idIndex))
	get := func() *jen.Statement { return sel(idWire, p.goName) }

	switch p.elemCat {
	case CategoryScalar:
		if p.elem.(*schema.Scalar).Kind == schema.KindBool {
			g.Add(dst).Op("=").Add(e.runtime("VectorBool").Call(
				sel(idWire, idTable).Call(),
				jen.Lit(p.def.Offset),
				jen.Id(idIndex),
			))
			return
		}

		g.Add(dst).Op("=").Add(get().Call(jen.Id(idIndex)))
	case CategoryEnum:
		g.Add(dst).Op("=").Add(e.enumFromWire(p.elem.(*schema.Enum).Def, p.byteEnum, get().Call(jen.Id(idIndex))))
	case CategoryString:
		g.Add(dst).Op("=").String().Call(get().Call(jen.Id(idIndex)))
	case CategoryFixedRecord, CategoryVariableRecord:
		nested := p.elem.(*schema.Record).Def

		g.Id(idElem).Op(":=").New(e.wireType(nested))
		g.If(get().Call(jen.Id(idElem), jen.Id(idIndex))).Block(
			jen.Add(dst).Op("=").Add(e.fromWire(nested).Call(jen.Id(idElem))),
		)
	}
}

// genToWire generates the `ToWire` method that writes the record into a
// builder and returns its offset. Structs are written in place, so their
// offset is only valid as the argument of the enclosing Add call or inside
// a vector.
func (e *emitter) genToWire(def *schema.RecordDef, plans []*fieldPlan) {
	name := e.recordName(def)
	valueType := def.Options().ValueType

	recv := jen.Id(idRecv).Op("*").Id(name)
	if valueType {
		recv = jen.Id(idRecv).Id(name)
	}

	e.f.Func().Params(recv).Id(idToWire).Params(
		jen.Id(idBuilder).Op("*").Add(e.flatbuffers("Builder")),
	).Add(e.flatbuffers("UOffsetT")).BlockFunc(func(g *jen.Group) {
		if def.Fixed {
			e.genStructToWire(g, def, valueType)
		} else {
			e.genTableToWire(g, def, plans, valueType)
		}
	})
	e.f.Line()
}

func (e *emitter) genStructToWire(g *jen.Group, def *schema.RecordDef, valueType bool) {
	if !valueType {
		g.If(jen.Id(idRecv).Op("==").Nil()).Block(
			jen.Id(idRecv).Op("=").Op("&").Id(e.recordName(def)).Values(),
		)
		g.Empty()
	}

	g.Return(e.wireQual(def.Namespace, "Create"+def.Name).CallFunc(func(g *jen.Group) {
		g.Id(idBuilder)
		e.genStructArgs(g, def, []string{idRecv})
	}))
}

// genStructArgs lists the arguments of a flatc struct constructor, which
// takes the fields of nested structs flattened in field order.
func (e *emitter) genStructArgs(g *jen.Group, def *schema.RecordDef, path []string) {
	for _, f := range def.Fields {
		if f.Deprecated {
			genZeroArgs(g, f.Type)
			continue
		}

		fieldPath := append(append([]string{}, path...), camel(f.Name))

		switch t := f.Type.(type) {
		case *schema.Record:
			e.genStructArgs(g, t.Def, fieldPath)
		case *schema.Enum:
			g.Add(e.enumToWire(t.Def, fieldByteEnum(f), sel(fieldPath...)))
		default:
			g.Add(sel(fieldPath...))
		}
	}
}

// genZeroArgs fills the constructor arguments of a field that has no native
// counterpart.
func genZeroArgs(g *jen.Group, t schema.Type) {
	switch t := t.(type) {
	case *schema.Record:
		for _, f := range t.Def.Fields {
			genZeroArgs(g, f.Type)
		}
	case *schema.Scalar:
		if t.Kind == schema.KindBool {
			g.False()
		} else {
			g.Lit(0)
		}
	default:
		g.Lit(0)
	}
}

func (e *emitter) enumToWire(def *schema.EnumDef, boxed bool, v *jen.Statement) *jen.Statement {
	if boxed {
		v = v.Dot("Unbox").Call()
	}

	return e.wireQual(def.Namespace, def.Name).Call(v)
}

func (e *emitter) genTableToWire(g *jen.Group, def *schema.RecordDef, plans []*fieldPlan, valueType bool) {
	if !valueType {
		g.If(jen.Id(idRecv).Op("==").Nil()).Block(jen.Return(jen.Lit(0)))
		g.Empty()
	}

	// Strings, vectors and tables can't be created while the table is
	// being built.
	for _, p := range plans {
		switch p.cat {
		case CategoryString:
			g.Id(offsetVar(p)).Op(":=").Id(idBuilder).Dot("CreateString").Call(sel(idRecv, p.goName))
		case CategoryVector:
			g.Var().Id(offsetVar(p)).Add(e.flatbuffers("UOffsetT"))
			g.If(jen.Len(sel(idRecv, p.goName)).Op(">").Lit(0)).Block(
				jen.Id(offsetVar(p)).Op("=").Add(e.vectorToWire(p, sel(idRecv, p.goName))),
			)
		case CategoryVariableRecord:
			g.Id(offsetVar(p)).Op(":=").Add(sel(idRecv, p.goName)).Dot(idToWire).Call(jen.Id(idBuilder))
		}
	}

	g.Empty()
	g.Add(e.wireQual(def.Namespace, def.Name+"Start")).Call(jen.Id(idBuilder))

	for _, p := range plans {
		add := func(v jen.Code) *jen.Statement {
			return e.wireQual(def.Namespace, def.Name+"Add"+p.goName).Call(jen.Id(idBuilder), v)
		}

		switch p.cat {
		case CategoryScalar:
			g.Add(add(sel(idRecv, p.goName)))
		case CategoryEnum:
			g.Add(add(e.enumToWire(p.def.Type.(*schema.Enum).Def, p.byteEnum, sel(idRecv, p.goName))))
		case CategoryString, CategoryVector, CategoryVariableRecord:
			g.Add(add(jen.Id(offsetVar(p))))
		case CategoryFixedRecord:
			nested := p.def.Type.(*schema.Record).Def
			write := add(sel(idRecv, p.goName).Dot(idToWire).Call(jen.Id(idBuilder)))

			// An absent struct is left out of the table.
			if nested.Options().ValueType {
				g.Add(write)
			} else {
				g.If(sel(idRecv, p.goName).Op("!=").Nil()).Block(write)
			}
		}
	}

	g.Return(e.wireQual(def.Namespace, def.Name+"End").Call(jen.Id(idBuilder)))
}
