package native

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	assert "github.com/stretchr/testify/require"
)

// finishVector stores `vec` in the first slot of a root table and returns
// the finished root table together with the position of the vector data.
func finishVector(t *testing.T, b *flatbuffers.Builder, vec flatbuffers.UOffsetT) (flatbuffers.Table, flatbuffers.UOffsetT, int) {
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}

	o := flatbuffers.UOffsetT(tab.Offset(4))
	assert.NotZero(t, o, "vector slot is empty")

	return tab, tab.Vector(o), tab.VectorLen(o)
}

func TestCreateScalarVector(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	vec := CreateScalarVector(b, []int32{7, -1, 42}, 4, (*flatbuffers.Builder).PrependInt32)

	tab, start, n := finishVector(t, b, vec)
	assert.Equal(t, 3, n)

	got := make([]int32, n)
	for j := range got {
		got[j] = tab.GetInt32(start + flatbuffers.UOffsetT(j*4))
	}

	assert.Equal(t, []int32{7, -1, 42}, got)
}

func TestCreateScalarVectorEmpty(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	vec := CreateScalarVector(b, []float64{}, 8, (*flatbuffers.Builder).PrependFloat64)

	_, _, n := finishVector(t, b, vec)
	assert.Equal(t, 0, n)
}

type testMode int8

func TestCreateEnumVectorUnboxes(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	modes := []ByteEnum[testMode]{BoxEnum(testMode(1)), BoxEnum(testMode(3)), BoxEnum(testMode(-2))}
	vec := CreateEnumVector(b, modes, 1, (*flatbuffers.Builder).PrependInt8)

	tab, start, n := finishVector(t, b, vec)
	assert.Equal(t, 3, n)
	assert.Equal(t, int8(1), tab.GetInt8(start))
	assert.Equal(t, int8(3), tab.GetInt8(start+1))
	assert.Equal(t, int8(-2), tab.GetInt8(start+2))
}

func TestCreateStringVector(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	vec := CreateStringVector(b, []string{"a", "", "hello"})

	tab, start, n := finishVector(t, b, vec)
	assert.Equal(t, 3, n)

	got := make([]string, n)
	for j := range got {
		got[j] = string(tab.String(start + flatbuffers.UOffsetT(j*flatbuffers.SizeUOffsetT)))
	}

	assert.Equal(t, []string{"a", "", "hello"}, got)
}

type testPoint struct {
	x int32
}

func packTestPoint(p *testPoint, b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}

	b.StartObject(1)
	b.PrependInt32Slot(0, p.x, 0)
	return b.EndObject()
}

func TestCreateTableVector(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	vec := CreateTableVector(b, []*testPoint{{x: 1}, nil, {x: 3}}, packTestPoint)

	tab, start, n := finishVector(t, b, vec)
	assert.Equal(t, 3, n)

	xs := make([]int32, n)
	for j := range xs {
		elem := flatbuffers.Table{
			Bytes: tab.Bytes,
			Pos:   tab.Indirect(start + flatbuffers.UOffsetT(j*flatbuffers.SizeUOffsetT)),
		}

		xs[j] = elem.GetInt32Slot(4, -1)
	}

	// The nil element is an empty table, so its field reads as the default.
	assert.Equal(t, []int32{1, -1, 3}, xs)
}

type testVec struct {
	x, y int32
}

func packTestVec(v testVec, b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.Prep(4, 8)
	b.PrependInt32(v.y)
	b.PrependInt32(v.x)
	return b.Offset()
}

func TestCreateStructVector(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	vec := CreateStructVector(b, []testVec{{1, 2}, {3, 4}, {5, 6}}, 8, 4, packTestVec)

	tab, start, n := finishVector(t, b, vec)
	assert.Equal(t, 3, n)

	got := make([]testVec, n)
	for j := range got {
		pos := start + flatbuffers.UOffsetT(j*8)
		got[j] = testVec{x: tab.GetInt32(pos), y: tab.GetInt32(pos + 4)}
	}

	assert.Equal(t, []testVec{{1, 2}, {3, 4}, {5, 6}}, got)
}
