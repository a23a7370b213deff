package test

import (
	"reflect"
	"testing"

	"github.com/embermark/flatbuffers/native"
	"github.com/embermark/flatbuffers/test/fixtures/native/game/sample"
	samplefb "github.com/embermark/flatbuffers/test/fixtures/wire/Game/Sample"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	flatbuffers "github.com/google/flatbuffers/go"
	assert "github.com/stretchr/testify/require"
)

func toWire(s *sample.TSprite) *samplefb.Sprite {
	b := flatbuffers.NewBuilder(0)
	b.Finish(s.ToWire(b))
	return samplefb.GetRootAsSprite(b.FinishedBytes(), 0)
}

// finish builds a sprite table with `build` adding the fields.
func finish(b *flatbuffers.Builder, build func()) *samplefb.Sprite {
	samplefb.SpriteStart(b)
	build()
	b.Finish(samplefb.SpriteEnd(b))
	return samplefb.GetRootAsSprite(b.FinishedBytes(), 0)
}

func TestRoundTrip(t *testing.T) {
	want := &sample.TSprite{
		Color:   sample.ColorBlue,
		Label:   "hero",
		Tags:    []string{"a", "", "c"},
		Pos:     sample.VVec2{X: 1.5, Y: -2},
		Weights: []int32{3, 1, 2},
		Points:  []sample.VVec2{{X: 1}, {Y: 2}, {X: 3, Y: 4}},
		Child: &sample.TSprite{
			Color: sample.ColorRed,
			Label: "pet",
		},
		Children: []*sample.TSprite{
			{Label: "first", Color: sample.ColorGreen},
			{Label: "second", Lit: true, Color: sample.ColorGreen},
		},
		Lit:   true,
		Mode:  native.BoxEnum(sample.ModeRun),
		Modes: []sample.Mode{sample.ModeJump, sample.ModeIdle},
		Segment: &sample.TSegment{
			A:       sample.VVec2{X: 1, Y: 2},
			B:       sample.VVec2{X: 3, Y: 4},
			Visible: true,
		},
		Segments: []*sample.TSegment{
			{A: sample.VVec2{X: 5}},
			{B: sample.VVec2{Y: 6}, Visible: true},
		},
		Flags: []bool{true, false, true},
	}

	got := sample.TSpriteFromWire(toWire(want))
	assert.Empty(t, cmp.Diff(want, got, cmpopts.EquateEmpty()))

	// A second pass is stable.
	again := sample.TSpriteFromWire(toWire(got))
	assert.Empty(t, cmp.Diff(got, again))
}

func TestFromWireNil(t *testing.T) {
	assert.Nil(t, sample.TSpriteFromWire(nil))
	assert.Nil(t, sample.TSegmentFromWire(nil))
	assert.Equal(t, sample.VVec2{}, sample.VVec2FromWire(nil))

	var s *sample.TSprite
	assert.Equal(t, flatbuffers.UOffsetT(0), s.ToWire(flatbuffers.NewBuilder(0)))
}

func TestAbsentFields(t *testing.T) {
	w := finish(flatbuffers.NewBuilder(0), func() {})

	got := sample.TSpriteFromWire(w)
	assert.Equal(t, sample.ColorGreen, got.Color)
	assert.Equal(t, "", got.Label)
	assert.Nil(t, got.Child)
	assert.Nil(t, got.Segment)
	assert.Equal(t, sample.VVec2{}, got.Pos)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Children)
	assert.False(t, got.Lit)
}

func TestEmptyVectorsAreOmitted(t *testing.T) {
	w := toWire(&sample.TSprite{Tags: []string{}, Weights: nil})

	assert.Zero(t, w.TagsLength())
	assert.Zero(t, w.WeightsLength())
	tab := w.Table()
	assert.Zero(t, tab.Offset(10))
	assert.Zero(t, tab.Offset(14))
}

func TestVectorOrder(t *testing.T) {
	w := toWire(&sample.TSprite{
		Weights: []int32{9, 8, 7, 6},
		Tags:    []string{"z", "y"},
		Children: []*sample.TSprite{
			{Label: "one"}, {Label: "two"},
		},
	})

	assert.Equal(t, 4, w.WeightsLength())
	for j, v := range []int32{9, 8, 7, 6} {
		assert.Equal(t, v, w.Weights(j))
	}

	assert.Equal(t, "y", string(w.Tags(1)))

	child := new(samplefb.Sprite)
	assert.True(t, w.Children(child, 1))
	assert.Equal(t, "two", string(child.Label()))
}

func TestNilElements(t *testing.T) {
	w := toWire(&sample.TSprite{
		Children: []*sample.TSprite{nil, {Label: "x"}},
		Segments: []*sample.TSegment{nil, {Visible: true}},
	})

	got := sample.TSpriteFromWire(w)

	assert.Len(t, got.Children, 2)
	assert.Equal(t, sample.ColorGreen, got.Children[0].Color)
	assert.Equal(t, "", got.Children[0].Label)
	assert.Equal(t, "x", got.Children[1].Label)

	assert.Empty(t, cmp.Diff([]*sample.TSegment{{}, {Visible: true}}, got.Segments))
}

func TestBoolNormalization(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	samplefb.SpriteStartFlagsVector(b, 2)
	b.PrependByte(2)
	b.PrependByte(0)
	flags := b.EndVector(2)

	w := finish(b, func() {
		samplefb.SpriteAddFlags(b, flags)
		b.PrependByteSlot(9, 2, 0)

		b.Prep(4, 20)
		b.Pad(3)
		b.PrependByte(2)
		b.Prep(4, 8)
		b.PrependFloat32(0)
		b.PrependFloat32(0)
		b.Prep(4, 8)
		b.PrependFloat32(0)
		b.PrependFloat32(0)
		samplefb.SpriteAddSegment(b, b.Offset())
	})

	assert.False(t, w.Lit())
	assert.False(t, w.Flags(1))
	assert.False(t, w.Segment(nil).Visible())

	got := sample.TSpriteFromWire(w)
	assert.True(t, got.Lit)
	assert.Equal(t, []bool{false, true}, got.Flags)
	assert.True(t, got.Segment.Visible)

	// Normalized values are written back as 1.
	again := toWire(got)
	assert.True(t, again.Lit())
	assert.True(t, again.Flags(1))
	assert.True(t, again.Segment(nil).Visible())
}

func TestByteEnum(t *testing.T) {
	s := &sample.TSprite{}

	assert.NoError(t, native.Set(s, "mode", 3))
	assert.Equal(t, sample.ModeJump, s.Mode.Unbox())
	assert.Equal(t, samplefb.ModeJump, toWire(s).Mode())

	// Values outside the enum survive a round trip.
	assert.NoError(t, native.Set(s, "mode", uint8(7)))
	w := toWire(s)
	assert.Equal(t, samplefb.Mode(7), w.Mode())

	got := sample.TSpriteFromWire(w)
	assert.Equal(t, sample.Mode(7), got.Mode.Unbox())
	assert.Equal(t, "Mode(7)", got.Mode.Unbox().String())
	assert.Equal(t, "Jump", sample.ModeJump.String())
}

func TestDeprecatedField(t *testing.T) {
	_, ok := reflect.TypeOf(sample.TSprite{}).FieldByName("OldId")
	assert.False(t, ok)

	b := flatbuffers.NewBuilder(0)
	label := b.CreateString("old")
	w := finish(b, func() {
		samplefb.SpriteAddLabel(b, label)
		samplefb.SpriteAddOldId(b, 42)
	})
	assert.Equal(t, int32(42), w.OldId())

	again := toWire(sample.TSpriteFromWire(w))
	assert.Equal(t, int32(0), again.OldId())
	tab := again.Table()
	assert.Zero(t, tab.Offset(8))
	assert.Equal(t, "old", string(again.Label()))
}

func TestRegistry(t *testing.T) {
	typ, ok := native.Lookup("Game.Sample.Sprite")
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*sample.TSprite)(nil)), typ)

	typ, ok = native.Lookup("Game.Sample.Vec2")
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf(sample.VVec2{}), typ)

	v, err := native.New("Game.Sample.Segment")
	assert.NoError(t, err)
	assert.IsType(t, &sample.TSegment{}, v)

	v, err = native.New("Game.Sample.Vec2")
	assert.NoError(t, err)
	assert.IsType(t, &sample.VVec2{}, v)

	assert.Subset(t, native.Registered(), []string{
		"Game.Sample.Segment",
		"Game.Sample.Sprite",
		"Game.Sample.Vec2",
	})
}

func TestSpriteProperties(t *testing.T) {
	props, err := native.Properties(&sample.TSprite{})
	assert.NoError(t, err)
	assert.Len(t, props, 14)

	byName := make(map[string]native.Property)
	for _, p := range props {
		byName[p.Name] = p
	}

	assert.True(t, byName["label"].ReadOnly)
	assert.True(t, byName["label"].Persist)
	assert.True(t, byName["color"].Persist)
	assert.False(t, byName["color"].ReadOnly)
	assert.Equal(t, "Rendering", byName["mode"].Category)
	assert.Equal(t, "Game|Sample|Sprite", byName["tags"].Category)
	assert.Equal(t, "Children", byName["children"].Field)

	s := &sample.TSprite{Label: "fixed"}
	assert.ErrorIs(t, native.Set(s, "label", "changed"), native.ErrReadOnly)
	assert.Equal(t, "fixed", s.Label)

	assert.NoError(t, native.Set(s, "color", sample.ColorBlue))
	assert.NoError(t, native.Set(s, "Lit", true))
	assert.NoError(t, native.Set(s, "pos", sample.VVec2{X: 1}))
	assert.Equal(t, sample.ColorBlue, s.Color)
	assert.True(t, s.Lit)

	v, err := native.Get(s, "pos")
	assert.NoError(t, err)
	assert.Equal(t, sample.VVec2{X: 1}, v)

	assert.ErrorIs(t, native.Set(s, "old_id", 1), native.ErrUnknownProperty)
}
