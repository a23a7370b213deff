package native

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Booleans are stored as a byte on the wire. Any nonzero byte reads as true,
// unlike flatbuffers.GetBool which only accepts 1.

// TableBool reads the boolean in vtable slot `slot` of table `t`, or `def`
// when the field is absent.
func TableBool(t flatbuffers.Table, slot flatbuffers.VOffsetT, def bool) bool {
	if o := flatbuffers.UOffsetT(t.Offset(slot)); o != 0 {
		return t.GetByte(o+t.Pos) != 0
	}

	return def
}

// StructBool reads the boolean at byte `offset` of struct `t`.
func StructBool(t flatbuffers.Table, offset flatbuffers.UOffsetT) bool {
	return t.GetByte(t.Pos+offset) != 0
}

// VectorBool reads element `j` of the boolean vector in vtable slot `slot`
// of table `t`.
func VectorBool(t flatbuffers.Table, slot flatbuffers.VOffsetT, j int) bool {
	if o := flatbuffers.UOffsetT(t.Offset(slot)); o != 0 {
		return t.GetByte(t.Vector(o)+flatbuffers.UOffsetT(j)) != 0
	}

	return false
}
