package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	assert "github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

const project = `
-- fbnative.yaml --
version: 1
schemas:
  - path: schemas/*.yaml
wire:
  path: example.com/game/fb
native:
  path: example.com/game/native
  dir: native
-- schemas/pixel.yaml --
namespace: Game.Sample
enums:
  - name: Color
    underlying: byte
    values: [{name: Red}, {name: Green}, {name: Blue}]
records:
  - name: Pixel
    fields:
      - {name: color, type: Color}
      - {name: label, type: string}
`

const pixelFile = "native/game/sample/pixel_native.go"

func extract(t *testing.T, archive string) string {
	dir := t.TempDir()

	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, f.Name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
		assert.NoError(t, os.WriteFile(path, f.Data, 0600))
	}

	return dir
}

func TestRunAndCheck(t *testing.T) {
	dir := extract(t, project)

	var out bytes.Buffer
	err := Run(Settings{WorkingDir: dir, Check: true, Out: &out})
	assert.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out.String(), "missing "+pixelFile)

	assert.NoError(t, Run(Settings{WorkingDir: dir}))

	data, err := os.ReadFile(filepath.Join(dir, pixelFile))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "type TPixel struct")

	out.Reset()
	assert.NoError(t, Run(Settings{WorkingDir: dir, Check: true, Out: &out}))
	assert.Contains(t, out.String(), "ok      "+pixelFile)

	edited := strings.Replace(string(data), "type TPixel struct", "type TPixel2 struct", 1)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, pixelFile), []byte(edited), 0600))

	out.Reset()
	err = Run(Settings{WorkingDir: dir, Check: true, Out: &out})
	assert.ErrorIs(t, err, ErrStale)
	assert.ErrorContains(t, err, "1 of 1")
	assert.Contains(t, out.String(), "stale   "+pixelFile)
	assert.Contains(t, out.String(), "TPixel2")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorContains(t, Run(Settings{WorkingDir: dir}), "failed to read config file")

	dir = extract(t, `
-- fbnative.yaml --
schemas: [{path: "none/*.yaml"}]
wire: {path: a}
native: {path: b}
`)
	assert.ErrorContains(t, Run(Settings{WorkingDir: dir}), "no schema files matched")

	dir = extract(t, `
-- custom.yaml --
schemas: [{path: "*.schema"}]
wire: {path: example.com/fb}
native: {path: example.com/native}
-- s.schema --
unions: [{name: U}]
records:
  - name: Ok
    namespace: Good
    fields: [{name: v, type: int}]
  - name: Bad
    fields: [{name: u, type: U}]
-- other.schema --
namespace: Other
records:
  - name: Fine
    fields: [{name: v, type: int}]
`)
	err := Run(Settings{WorkingDir: dir, ConfigFile: "custom.yaml"})
	assert.ErrorContains(t, err, `record "Bad", field "u"`)

	// Other schema files are still written, no namespace of the failed one
	// is.
	_, statErr := os.Stat(filepath.Join(dir, "native/other/other_native.go"))
	assert.NoError(t, statErr)

	for _, path := range []string{"native/good/s_native.go", "native/s_native.go"} {
		_, statErr = os.Stat(filepath.Join(dir, path))
		assert.True(t, os.IsNotExist(statErr), path)
	}
}

func TestCheckOrphans(t *testing.T) {
	dir := extract(t, project)
	assert.NoError(t, Run(Settings{WorkingDir: dir}))

	orphan := "native/game/old/old_native.go"
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "native/game/old"), 0700))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, orphan), []byte("// Code generated by fbnative. DO NOT EDIT.\n\npackage old\n"), 0600))

	// Hand written files next to generated ones are left alone.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "native/game/old/extra_native.go"), []byte("package old\n"), 0600))

	var out bytes.Buffer
	err := Run(Settings{WorkingDir: dir, Check: true, Out: &out})
	assert.ErrorIs(t, err, ErrStale)
	assert.ErrorContains(t, err, "1 of 2")
	assert.Contains(t, out.String(), "ok      "+pixelFile)
	assert.Contains(t, out.String(), "orphan  "+orphan)
	assert.NotContains(t, out.String(), "extra_native.go")

	assert.NoError(t, os.Remove(filepath.Join(dir, orphan)))
	assert.NoError(t, Run(Settings{WorkingDir: dir, Check: true, Out: &out}))
}

func TestWatch(t *testing.T) {
	dir := extract(t, project)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, Settings{WorkingDir: dir})
	}()

	generated := func(snippet string) func() bool {
		return func() bool {
			data, err := os.ReadFile(filepath.Join(dir, pixelFile))
			return err == nil && strings.Contains(string(data), snippet)
		}
	}

	assert.Eventually(t, generated("o.Label = string(w.Label())"), 5*time.Second, 20*time.Millisecond)

	// Give the watcher time to register the schema directory.
	time.Sleep(100 * time.Millisecond)

	schemaPath := filepath.Join(dir, "schemas/pixel.yaml")
	data, err := os.ReadFile(schemaPath)
	assert.NoError(t, err)

	updated := strings.Replace(string(data), "{name: label, type: string}", "{name: caption, type: string}", 1)
	assert.NoError(t, os.WriteFile(schemaPath, []byte(updated), 0600))

	assert.Eventually(t, generated("o.Caption = string(w.Caption())"), 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
