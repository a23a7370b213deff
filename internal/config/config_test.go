package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	assert "github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	config, err := Parse([]byte(`
version: 1
schemas:
  - path: schemas/*.yaml
wire:
  path: github.com/acme/game/fb
native:
  path: github.com/acme/game/native
`))
	assert.NoError(t, err)

	assert.Equal(t, 1, config.Version)
	assert.Equal(t, []Schema{{Path: "schemas/*.yaml"}}, config.Schemas)
	assert.Equal(t, DefaultRuntimePath, config.Runtime.Path)
	assert.Equal(t, DefaultNativeDir, config.Native.Dir)
	assert.Equal(t, DefaultSuffix, config.Native.Suffix)
	assert.Equal(t, Naming{ReferencePrefix: "T", ValuePrefix: "V"}, config.Naming)
	assert.False(t, config.GenAll)

	level, err := config.LogLevel()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestParseOverrides(t *testing.T) {
	config, err := Parse([]byte(`
schemas: [{path: a.yaml}]
wire: {path: example.com/fb}
native: {path: example.com/native, dir: gen, suffix: .gen.go}
runtime: {path: example.com/rt}
naming: {referencePrefix: R, valuePrefix: S, enumPrefix: E}
genAll: true
logging: {level: debug}
`))
	assert.NoError(t, err)

	assert.Equal(t, Native{Path: "example.com/native", Dir: "gen", Suffix: ".gen.go"}, config.Native)
	assert.Equal(t, "example.com/rt", config.Runtime.Path)
	assert.Equal(t, Naming{ReferencePrefix: "R", ValuePrefix: "S", EnumPrefix: "E"}, config.Naming)
	assert.True(t, config.GenAll)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`
naming: {referencePrefix: X, valuePrefix: X}
logging: {level: loud}
`))

	assert.ErrorContains(t, err, "no schemas configured")
	assert.ErrorContains(t, err, "wire: missing path")
	assert.ErrorContains(t, err, "native: missing path")
	assert.ErrorContains(t, err, `both "X"`)
	assert.ErrorContains(t, err, `invalid level "loud"`)

	_, err = Parse([]byte("schemas: {"))
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fbnative.yaml")

	_, err := Read(path)
	assert.ErrorContains(t, err, "failed to read config file")

	err = os.WriteFile(path, []byte("schemas: [{path: x}]\nwire: {path: w}\nnative: {path: n}\n"), 0600)
	assert.NoError(t, err)

	config, err := Read(path)
	assert.NoError(t, err)
	assert.Equal(t, "w", config.Wire.Path)
}
