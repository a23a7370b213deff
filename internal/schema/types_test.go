package schema

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestParseScalarKind(t *testing.T) {
	k, ok := ParseScalarKind("ubyte")
	assert.True(t, ok)
	assert.Equal(t, KindUint8, k)
	assert.Equal(t, "uint8", k.GoName())
	assert.Equal(t, 1, k.Size())
	assert.Equal(t, "Uint8", k.BuilderSuffix())

	k, ok = ParseScalarKind("double")
	assert.True(t, ok)
	assert.Equal(t, 8, k.Size())
	assert.False(t, k.IsInteger())

	_, ok = ParseScalarKind("string")
	assert.False(t, ok)

	assert.False(t, KindNone.Valid())
	assert.False(t, KindBool.IsInteger())
	assert.Equal(t, "ScalarKind(99)", ScalarKind(99).String())
}

type kindNames struct{}

func (kindNames) Scalar(t *Scalar) string { return "scalar" }
func (kindNames) Enum(t *Enum) string     { return "enum" }
func (kindNames) String(t *String) string { return "string" }
func (kindNames) Vector(t *Vector) string { return "vector" }
func (kindNames) Record(t *Record) string { return "record" }
func (kindNames) Union(t *Union) string   { return "union" }

func TestVisit(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{&Scalar{Kind: KindInt32}, "scalar"},
		{&Enum{Def: &EnumDef{Name: "E"}}, "enum"},
		{&String{}, "string"},
		{&Vector{Elem: &String{}}, "vector"},
		{&Record{Def: &RecordDef{Name: "R"}}, "record"},
		{&Union{Def: &UnionDef{Name: "U"}}, "union"},
	}

	for _, test := range tests {
		got, ok := Visit[string](test.typ, kindNames{})
		assert.True(t, ok)
		assert.Equal(t, test.want, got, test.typ.String())
	}

	_, ok := Visit[string](nil, kindNames{})
	assert.False(t, ok)
}

func TestOptionsFlags(t *testing.T) {
	f := &FieldDef{Attributes: Attributes{
		AttrReadOnly: "false",
		AttrPersist:  "",
		AttrCategory: "Stats",
	}}

	assert.Equal(t, FieldOptions{Persist: true, Category: "Stats"}, f.Options())

	r := &RecordDef{Attributes: Attributes{AttrExport: ""}}
	assert.True(t, r.Options().ExportMalformed)
	assert.Empty(t, r.Options().Export)
}
