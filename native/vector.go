// Package native is the runtime support package of code generated by
// fbnative. Generated native declarations register themselves here, carry
// property tags read by Properties and Set, and call the vector helpers
// below to write their collections into a flatbuffers.Builder.
package native

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Scalar is any type with a fixed width wire representation.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Enum is the set of enum representations, native enums and ByteEnum
// boxes alike.
type Enum interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// CreateScalarVector writes `elems` as a vector of inline scalars. The
// native and wire element types are the same, `width` is their size in
// bytes and `prepend` is the matching flatbuffers.Builder method, for
// example (*flatbuffers.Builder).PrependInt32.
func CreateScalarVector[T Scalar](b *flatbuffers.Builder, elems []T, width int, prepend func(*flatbuffers.Builder, T)) flatbuffers.UOffsetT {
	b.StartVector(width, len(elems), width)

	for i := len(elems) - 1; i >= 0; i -= 1 {
		prepend(b, elems[i])
	}

	return b.EndVector(len(elems))
}

// CreateEnumVector writes `elems` as a vector of enum values. Each element
// is converted to the wire representation W before it's written, which
// also unboxes ByteEnum elements.
func CreateEnumVector[N Enum, W Enum](b *flatbuffers.Builder, elems []N, width int, prepend func(*flatbuffers.Builder, W)) flatbuffers.UOffsetT {
	b.StartVector(width, len(elems), width)

	for i := len(elems) - 1; i >= 0; i -= 1 {
		prepend(b, W(elems[i]))
	}

	return b.EndVector(len(elems))
}

// CreateStringVector interns every element and writes the vector of string
// offsets.
func CreateStringVector(b *flatbuffers.Builder, elems []string) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(elems))

	for i, s := range elems {
		offsets[i] = b.CreateString(s)
	}

	return createOffsetVector(b, offsets)
}

// CreateTableVector serializes every element with `pack` and writes the
// vector of table offsets. An element that packs to no table, a nil
// reference, is written as an empty table since vectors can't hold absent
// elements.
func CreateTableVector[E any](b *flatbuffers.Builder, elems []E, pack func(E, *flatbuffers.Builder) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, len(elems))

	for i, e := range elems {
		off := pack(e, b)

		if off == 0 {
			b.StartObject(0)
			off = b.EndObject()
		}

		offsets[i] = off
	}

	return createOffsetVector(b, offsets)
}

// CreateStructVector writes `elems` as a vector of inline structs of `size`
// bytes aligned to `align`. Structs are written in place, so `pack` is
// called back to front inside the vector.
func CreateStructVector[E any](b *flatbuffers.Builder, elems []E, size int, align int, pack func(E, *flatbuffers.Builder) flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(size, len(elems), align)

	for i := len(elems) - 1; i >= 0; i -= 1 {
		pack(elems[i], b)
	}

	return b.EndVector(len(elems))
}

func createOffsetVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)

	for i := len(offsets) - 1; i >= 0; i -= 1 {
		b.PrependUOffsetT(offsets[i])
	}

	return b.EndVector(len(offsets))
}
