package native

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const (
	// TagProperty holds `<schema name>,<ro|rw>,<persist|transient>`.
	TagProperty = "native"
	// TagCategory holds the category label of a property.
	TagCategory = "category"
)

var (
	ErrReadOnly        = errors.New("property is read-only")
	ErrUnknownProperty = errors.New("unknown property")
)

// Property describes one field of a generated native record.
type Property struct {
	// Name is the schema field name.
	Name string
	// Field is the Go field name.
	Field    string
	ReadOnly bool
	Persist  bool
	Category string
	Type     reflect.Type

	index int
}

// Properties returns the properties of the native record `v`, a struct or
// a pointer to one, in declaration order. Fields without a native tag are
// skipped.
func Properties(v any) ([]Property, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, errors.New("native: Properties of nil")
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("native: %s is not a struct", t)
	}

	props := make([]Property, 0, t.NumField())

	for i := 0; i < t.NumField(); i += 1 {
		sf := t.Field(i)

		tag, ok := sf.Tag.Lookup(TagProperty)
		if !ok {
			continue
		}

		p, err := parsePropertyTag(tag)
		if err != nil {
			return nil, fmt.Errorf("native: field %s of %s: %w", sf.Name, t, err)
		}

		p.Field = sf.Name
		p.Category = sf.Tag.Get(TagCategory)
		p.Type = sf.Type
		p.index = i
		props = append(props, p)
	}

	return props, nil
}

func parsePropertyTag(tag string) (Property, error) {
	parts := strings.Split(tag, ",")

	p := Property{Name: parts[0]}
	if len(p.Name) == 0 {
		return p, errors.New("empty property name")
	}

	for _, opt := range parts[1:] {
		switch opt {
		case "ro":
			p.ReadOnly = true
		case "rw":
			p.ReadOnly = false
		case "persist":
			p.Persist = true
		case "transient":
			p.Persist = false
		default:
			return p, fmt.Errorf(`unknown property option "%s"`, opt)
		}
	}

	return p, nil
}

// Get returns the value of the property `name` of record `v`.
func Get(v any, name string) (any, error) {
	rv, p, err := property(v, name)
	if err != nil {
		return nil, err
	}

	return rv.Field(p.index).Interface(), nil
}

// Set assigns `value` to the property `name` of the record pointed to by
// `v`. Numeric values are converted to the property type and integers are
// accepted for ByteEnum properties.
func Set(v any, name string, value any) error {
	if reflect.TypeOf(v) == nil || reflect.TypeOf(v).Kind() != reflect.Pointer {
		return errors.New("native: Set needs a pointer to a record")
	}

	rv, p, err := property(v, name)
	if err != nil {
		return err
	}

	if p.ReadOnly {
		return fmt.Errorf(`native: "%s": %w`, name, ErrReadOnly)
	}

	fv := rv.Field(p.index)
	val := reflect.ValueOf(value)

	if bs, ok := fv.Addr().Interface().(byteSetter); ok {
		b, err := toByte(val)
		if err != nil {
			return fmt.Errorf(`native: "%s": %w`, name, err)
		}

		bs.setByte(b)
		return nil
	}

	if !val.IsValid() {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}

	if val.Type().AssignableTo(fv.Type()) {
		fv.Set(val)
		return nil
	}

	if isNumeric(val.Kind()) && isNumeric(fv.Kind()) {
		fv.Set(val.Convert(fv.Type()))
		return nil
	}

	return fmt.Errorf(`native: "%s": can't assign %s to %s`, name, val.Type(), fv.Type())
}

func property(v any, name string) (reflect.Value, Property, error) {
	props, err := Properties(v)
	if err != nil {
		return reflect.Value{}, Property{}, err
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, Property{}, errors.New("native: nil record")
		}
		rv = rv.Elem()
	}

	for _, p := range props {
		if p.Name == name || p.Field == name {
			return rv, p, nil
		}
	}

	return reflect.Value{}, Property{}, fmt.Errorf(`native: "%s": %w`, name, ErrUnknownProperty)
}

func toByte(val reflect.Value) (uint8, error) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint8(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint8(val.Uint()), nil
	}

	return 0, fmt.Errorf("can't assign %v to a byte enum", val.Type())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
