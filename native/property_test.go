package native

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

type testSprite struct {
	Label  string             `native:"label,rw,persist" category:"Game|Sprite"`
	ID     int32              `native:"id,ro,transient" category:"Game|Sprite"`
	Mode   ByteEnum[testMode] `native:"mode,rw,transient" category:"Rendering"`
	Weight float32            `native:"weight,rw,transient"`

	cache int
}

func TestProperties(t *testing.T) {
	props, err := Properties(&testSprite{})
	assert.NoError(t, err)
	assert.Len(t, props, 4)

	assert.Equal(t, "label", props[0].Name)
	assert.Equal(t, "Label", props[0].Field)
	assert.True(t, props[0].Persist)
	assert.False(t, props[0].ReadOnly)
	assert.Equal(t, "Game|Sprite", props[0].Category)

	assert.Equal(t, "id", props[1].Name)
	assert.True(t, props[1].ReadOnly)
	assert.False(t, props[1].Persist)

	assert.Equal(t, "Rendering", props[2].Category)
	assert.Equal(t, "", props[3].Category)
}

func TestPropertiesInvalidTag(t *testing.T) {
	type bad struct {
		X int `native:"x,sometimes"`
	}

	_, err := Properties(bad{})
	assert.ErrorContains(t, err, "sometimes")

	_, err = Properties(42)
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	s := &testSprite{ID: 9}

	assert.NoError(t, Set(s, "label", "hero"))
	assert.Equal(t, "hero", s.Label)

	assert.NoError(t, Set(s, "Weight", 2))
	assert.Equal(t, float32(2), s.Weight)

	assert.NoError(t, Set(s, "mode", 3))
	assert.Equal(t, testMode(3), s.Mode.Unbox())

	assert.NoError(t, Set(s, "mode", testMode(1)))
	assert.Equal(t, testMode(1), s.Mode.Unbox())

	err := Set(s, "id", int32(10))
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.Equal(t, int32(9), s.ID)

	assert.ErrorIs(t, Set(s, "missing", 1), ErrUnknownProperty)
	assert.Error(t, Set(s, "label", 1))
	assert.Error(t, Set(s, "mode", "x"))
	assert.Error(t, Set(*s, "label", "x"))
}

func TestGet(t *testing.T) {
	s := testSprite{Label: "hero", Mode: BoxEnum(testMode(2))}

	v, err := Get(s, "label")
	assert.NoError(t, err)
	assert.Equal(t, "hero", v)

	v, err = Get(&s, "mode")
	assert.NoError(t, err)
	assert.Equal(t, BoxEnum(testMode(2)), v)
}
