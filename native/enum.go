package native

// ByteEnum stores an 8-bit enum value as a plain byte so it can be assigned
// dynamically through Set. Generated code boxes wire values with BoxEnum and
// unboxes them only when serializing.
type ByteEnum[E Enum] uint8

func BoxEnum[E Enum](v E) ByteEnum[E] {
	return ByteEnum[E](v)
}

func (b ByteEnum[E]) Unbox() E {
	return E(b)
}

// setByte implements byteSetter for Set.
func (b *ByteEnum[E]) setByte(v uint8) {
	*b = ByteEnum[E](v)
}

type byteSetter interface {
	setByte(v uint8)
}
