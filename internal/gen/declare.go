package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/embermark/flatbuffers/internal/schema"
)

const (
	directiveRecord = "//native:record "
	directiveExport = "//native:export "

	tagProperty = "native"
	tagCategory = "category"
)

// genDoc passes schema doc lines through as Go comments.
func genDoc(g *jen.Group, doc []string) {
	for _, line := range doc {
		line = strings.TrimPrefix(line, " ")

		if len(strings.TrimSpace(line)) == 0 {
			g.Comment("//")
			continue
		}

		g.Comment(line)
	}
}

func (e *emitter) genEnumDecl(def *schema.EnumDef) {
	name := e.enumName(def)

	genDoc(e.f.Group, def.Doc)
	e.f.Type().Id(name).Id(def.Underlying.GoName())
	e.f.Line()

	e.f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range def.Values {
			genDoc(g, v.Doc)
			g.Id(name + v.Name).Id(name).Op("=").Lit(int(v.Value))
		}
	})
	e.f.Line()

	// Values sharing a number are listed once.
	seen := make(map[int64]bool)
	e.f.Var().Id(idEnumNames + name).Op("=").Map(jen.Id(name)).String().ValuesFunc(func(g *jen.Group) {
		for _, v := range def.Values {
			if seen[v.Value] {
				continue
			}

			seen[v.Value] = true
			g.Line().Id(name + v.Name).Op(":").Lit(v.Name)
		}
		g.Line()
	})
	e.f.Line()

	format := jen.Qual("strconv", "FormatInt").Call(jen.Int64().Call(jen.Id("v")), jen.Lit(10))
	if strings.HasPrefix(def.Underlying.GoName(), "uint") {
		format = jen.Qual("strconv", "FormatUint").Call(jen.Uint64().Call(jen.Id("v")), jen.Lit(10))
	}

	e.f.Func().Params(jen.Id("v").Id(name)).Id("String").Params().String().Block(
		jen.If(
			jen.List(jen.Id("s"), jen.Id("ok")).Op(":=").Id(idEnumNames+name).Index(jen.Id("v")),
			jen.Id("ok"),
		).Block(
			jen.Return(jen.Id("s")),
		),
		jen.Return(jen.Lit(name+"(").Op("+").Add(format).Op("+").Lit(")")),
	)
	e.f.Line()
}

func (e *emitter) genRecordDecl(def *schema.RecordDef, plans []*fieldPlan) {
	opts := def.Options()

	genDoc(e.f.Group, def.Doc)
	e.f.Comment(directiveRecord + def.QualifiedName())

	if opts.ExportMalformed {
		e.logger.Warn().
			Str("record", def.QualifiedName()).
			Msg("export attribute without a name, omitting the export directive")
	} else if len(opts.Export) > 0 {
		e.f.Comment(directiveExport + opts.Export)
	}

	e.f.Type().Id(e.recordName(def)).StructFunc(func(g *jen.Group) {
		for _, p := range plans {
			genDoc(g, p.def.Doc)
			g.Id(p.goName).Add(p.nativeType(e, def)).Tag(map[string]string{
				tagProperty: propertyTag(p),
				tagCategory: fieldCategory(def, p),
			})
		}
	})
	e.f.Line()
}

func propertyTag(p *fieldPlan) string {
	access := "rw"
	if p.opts.ReadOnly {
		access = "ro"
	}

	persist := "transient"
	if p.opts.Persist {
		persist = "persist"
	}

	return fmt.Sprintf("%s,%s,%s", p.def.Name, access, persist)
}

func fieldCategory(def *schema.RecordDef, p *fieldPlan) string {
	if len(p.opts.Category) > 0 {
		return p.opts.Category
	}

	return categoryLabel(def)
}
