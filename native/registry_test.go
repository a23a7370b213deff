package native

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

type registeredTable struct {
	Name string
}

type registeredStruct struct {
	X float32
}

func TestRegistry(t *testing.T) {
	Register("RegistryTest.Table", (*registeredTable)(nil))
	Register("RegistryTest.Struct", registeredStruct{})

	v, err := New("RegistryTest.Table")
	assert.NoError(t, err)
	assert.IsType(t, &registeredTable{}, v)

	v, err = New("RegistryTest.Struct")
	assert.NoError(t, err)
	assert.IsType(t, &registeredStruct{}, v)

	_, err = New("RegistryTest.Missing")
	assert.Error(t, err)

	typ, ok := Lookup("RegistryTest.Struct")
	assert.True(t, ok)
	assert.Equal(t, "registeredStruct", typ.Name())

	assert.Subset(t, Registered(), []string{"RegistryTest.Struct", "RegistryTest.Table"})

	assert.Panics(t, func() {
		Register("RegistryTest.Table", registeredTable{})
	})

	assert.Panics(t, func() {
		Register("RegistryTest.Nil", nil)
	})
}
