package schema

import (
	"fmt"
	"strconv"
)

const (
	// vtableFieldsStart is the vtable offset of the first field slot. The
	// vtable starts with its own size and the size of the table.
	vtableFieldsStart = 4
	vtableSlotSize    = 2
)

type layoutState int

const (
	layoutPending layoutState = iota
	layoutActive
	layoutDone
)

// layouter computes inline struct layouts and table slot offsets the way
// the schema compiler does. Field offsets the parser already provided are
// kept as they are.
type layouter struct {
	state    map[*RecordDef]layoutState
	explicit map[*FieldDef]bool
	// values tracks the value-type tables checked for containing
	// themselves.
	values map[*RecordDef]layoutState
}

func newLayouter() *layouter {
	return &layouter{
		state:    make(map[*RecordDef]layoutState),
		explicit: make(map[*FieldDef]bool),
		values:   make(map[*RecordDef]layoutState),
	}
}

func (l *layouter) layout(def *RecordDef) error {
	if def.Fixed {
		return l.layoutStruct(def)
	}

	return l.layoutTable(def)
}

func (l *layouter) layoutTable(def *RecordDef) error {
	if def.Options().ValueType {
		if err := l.checkValueTable(def); err != nil {
			return err
		}
	}

	for i, f := range def.Fields {
		if l.explicit[f] {
			continue
		}

		id := i
		if v, ok := f.Attributes.Lookup(AttrID); ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				return fmt.Errorf(`invalid id "%s" for field "%s" of table "%s"`, v, f.Name, def.QualifiedName())
			}
			id = parsed
		}

		f.Offset = vtableFieldsStart + id*vtableSlotSize
	}

	return nil
}

func (l *layouter) layoutStruct(def *RecordDef) error {
	switch l.state[def] {
	case layoutDone:
		return nil
	case layoutActive:
		return fmt.Errorf(`struct "%s" contains itself`, def.QualifiedName())
	}

	l.state[def] = layoutActive

	offset := 0
	minAlign := 1

	for _, f := range def.Fields {
		size, align, err := l.inlineSize(f.Type)
		if err != nil {
			return fmt.Errorf(`field "%s" of struct "%s": %w`, f.Name, def.QualifiedName(), err)
		}

		offset = alignUp(offset, align)
		if l.explicit[f] {
			offset = f.Offset
		} else {
			f.Offset = offset
		}

		offset += size
		minAlign = max(minAlign, align)
	}

	def.MinAlign = minAlign
	def.ByteSize = alignUp(offset, minAlign)
	l.state[def] = layoutDone

	return nil
}

// checkValueTable rejects a value-type table that holds itself by value,
// directly or through the value-type tables of its fields. Vectors and
// reference-type tables are held by reference and end the search.
func (l *layouter) checkValueTable(def *RecordDef) error {
	switch l.values[def] {
	case layoutDone:
		return nil
	case layoutActive:
		return fmt.Errorf(`value type table "%s" contains itself`, def.QualifiedName())
	}

	l.values[def] = layoutActive

	for _, f := range def.ActiveFields() {
		r, ok := f.Type.(*Record)
		if !ok || r.Def.Fixed || !r.Def.Options().ValueType {
			continue
		}

		if err := l.checkValueTable(r.Def); err != nil {
			return fmt.Errorf(`field "%s" of table "%s": %w`, f.Name, def.QualifiedName(), err)
		}
	}

	l.values[def] = layoutDone
	return nil
}

// inlineSize returns the size and alignment of a type stored inline in a
// struct.
func (l *layouter) inlineSize(t Type) (int, int, error) {
	switch t := t.(type) {
	case *Scalar:
		return t.Kind.Size(), t.Kind.Size(), nil
	case *Enum:
		return t.Def.Underlying.Size(), t.Def.Underlying.Size(), nil
	case *Record:
		if !t.Def.Fixed {
			return 0, 0, fmt.Errorf(`table "%s" can't be stored inline`, t.Def.QualifiedName())
		}

		if err := l.layoutStruct(t.Def); err != nil {
			return 0, 0, err
		}

		return t.Def.ByteSize, t.Def.MinAlign, nil
	}

	return 0, 0, fmt.Errorf(`type "%s" can't be stored inline`, t.String())
}

func alignUp(offset int, align int) int {
	if align <= 1 {
		return offset
	}

	return (offset + align - 1) / align * align
}
