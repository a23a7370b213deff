package gen

import (
	"fmt"

	"github.com/embermark/flatbuffers/internal/schema"
)

type Category int

const (
	CategoryInvalid Category = iota
	CategoryScalar
	CategoryEnum
	CategoryString
	CategoryVector
	CategoryFixedRecord
	CategoryVariableRecord
)

func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryEnum:
		return "enum"
	case CategoryString:
		return "string"
	case CategoryVector:
		return "vector"
	case CategoryFixedRecord:
		return "struct"
	case CategoryVariableRecord:
		return "table"
	}

	return "invalid"
}

// classify returns the conversion category of `t`. Types without a
// conversion rule are reported as ErrUnrepresentable, never defaulted.
func classify(t schema.Type) (Category, error) {
	c, ok := schema.Visit[Category](t, classifier{})
	if !ok || c == CategoryInvalid {
		return CategoryInvalid, fmt.Errorf("%w %s", ErrUnrepresentable, typeName(t))
	}

	return c, nil
}

func typeName(t schema.Type) string {
	if t == nil {
		return "<nil>"
	}

	return fmt.Sprintf(`"%s"`, t.String())
}

type classifier struct{}

func (classifier) Scalar(t *schema.Scalar) Category {
	if !t.Kind.Valid() {
		return CategoryInvalid
	}
	return CategoryScalar
}

func (classifier) Enum(t *schema.Enum) Category {
	if t.Def == nil || !t.Def.Underlying.IsInteger() {
		return CategoryInvalid
	}
	return CategoryEnum
}

func (classifier) String(*schema.String) Category {
	return CategoryString
}

// Vector elements must be representable on their own. Vectors of vectors
// have no wire form.
func (classifier) Vector(t *schema.Vector) Category {
	if _, nested := t.Elem.(*schema.Vector); nested {
		return CategoryInvalid
	}

	if _, err := classify(t.Elem); err != nil {
		return CategoryInvalid
	}

	return CategoryVector
}

func (classifier) Record(t *schema.Record) Category {
	if t.Def == nil {
		return CategoryInvalid
	}

	if t.Def.Fixed {
		return CategoryFixedRecord
	}
	return CategoryVariableRecord
}

func (classifier) Union(*schema.Union) Category {
	return CategoryInvalid
}
