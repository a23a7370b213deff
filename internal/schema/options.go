package schema

import "strconv"

// Attribute keys the generator understands. Other keys are ignored.
const (
	AttrReadOnly  = "readonly"
	AttrPersist   = "persist"
	AttrByteEnum  = "byte_enum"
	AttrCategory  = "category"
	AttrValueType = "value_type"
	AttrExport    = "export"
	AttrID        = "id"
)

type FieldOptions struct {
	ReadOnly bool
	Persist  bool
	ByteEnum bool
	// Category overrides the inferred category label when not empty.
	Category string
}

type RecordOptions struct {
	ValueType bool
	// Export is the linkage name to annotate the declaration with.
	Export string
	// ExportMalformed is set when the export attribute is present without
	// a value.
	ExportMalformed bool
}

type EnumOptions struct {
	ByteEnum bool
}

func (f *FieldDef) Options() FieldOptions {
	return FieldOptions{
		ReadOnly: flag(f.Attributes, AttrReadOnly),
		Persist:  flag(f.Attributes, AttrPersist),
		ByteEnum: flag(f.Attributes, AttrByteEnum),
		Category: f.Attributes[AttrCategory],
	}
}

func (d *RecordDef) Options() RecordOptions {
	opts := RecordOptions{
		ValueType: flag(d.Attributes, AttrValueType),
	}

	if export, ok := d.Attributes.Lookup(AttrExport); ok {
		if len(export) == 0 {
			opts.ExportMalformed = true
		} else {
			opts.Export = export
		}
	}

	return opts
}

func (d *EnumDef) Options() EnumOptions {
	return EnumOptions{
		ByteEnum: flag(d.Attributes, AttrByteEnum),
	}
}

// flag treats a present attribute as set unless its value parses as a
// false boolean. The IDL allows value-less attributes like `(readonly)`.
func flag(attrs Attributes, key string) bool {
	v, ok := attrs.Lookup(key)
	if !ok {
		return false
	}

	if len(v) == 0 {
		return true
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}

	return b
}
