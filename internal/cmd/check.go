package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/embermark/flatbuffers/internal/config"
	"github.com/embermark/flatbuffers/internal/gen"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var ErrStale = errors.New("generated files are out of date")

type fileState int

const (
	stateCurrent fileState = iota
	stateStale
	stateMissing
)

// check compares `files` with their counterparts under the working dir and
// reports every file to `s.Out`, with a diff for the stale ones. With
// `orphans`, generated files under the native dir that weren't rendered are
// stale too.
func check(s Settings, cfg config.Config, files []*gen.File, orphans bool) error {
	out := s.Out
	if out == nil {
		out = io.Discard
	}

	r := newReporter(out)
	stale := 0

	for _, f := range files {
		state, onDisk, err := compare(s.WorkingDir, f)
		if err != nil {
			return err
		}

		r.report(f, state, onDisk)

		if state != stateCurrent {
			stale += 1
		}
	}

	total := len(files)

	if orphans {
		found, err := orphanFiles(s.WorkingDir, cfg, files)
		if err != nil {
			return err
		}

		for _, path := range found {
			r.reportOrphan(path)
		}

		stale += len(found)
		total += len(found)
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d of %d", ErrStale, stale, total)
	}

	return nil
}

// orphanFiles returns the slash separated paths, relative to the working
// dir, of generated files under the native dir that aren't in `files`.
func orphanFiles(workingDir string, cfg config.Config, files []*gen.File) ([]string, error) {
	rendered := make(map[string]bool, len(files))
	for _, f := range files {
		rendered[f.Path] = true
	}

	root := filepath.Join(workingDir, filepath.FromSlash(cfg.Native.Dir))
	found := make([]string, 0)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), cfg.Native.Suffix) {
			return nil
		}

		rel, err := filepath.Rel(workingDir, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if rendered[rel] {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf(`failed to read file "%s": %w`, rel, err)
		}

		if gen.IsGenerated(data) {
			found = append(found, rel)
		}

		return nil
	})

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return found, err
}

func compare(workingDir string, f *gen.File) (fileState, string, error) {
	data, err := os.ReadFile(filepath.Join(workingDir, filepath.FromSlash(f.Path)))
	if errors.Is(err, fs.ErrNotExist) {
		return stateMissing, "", nil
	}

	if err != nil {
		return stateCurrent, "", fmt.Errorf(`failed to read file "%s": %w`, f.Path, err)
	}

	if string(data) != string(f.Source) {
		return stateStale, string(data), nil
	}

	return stateCurrent, "", nil
}

type reporter struct {
	out     io.Writer
	colored bool
	ok      *color.Color
	stale   *color.Color
	missing *color.Color
	orphan  *color.Color
	dmp     *diffmatchpatch.DiffMatchPatch
}

func newReporter(out io.Writer) *reporter {
	r := &reporter{
		out:     out,
		colored: isTerminal(out),
		ok:      color.New(color.FgGreen),
		stale:   color.New(color.FgYellow, color.Bold),
		missing: color.New(color.FgRed, color.Bold),
		orphan:  color.New(color.FgMagenta, color.Bold),
		dmp:     diffmatchpatch.New(),
	}

	for _, c := range []*color.Color{r.ok, r.stale, r.missing, r.orphan} {
		if r.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *reporter) report(f *gen.File, state fileState, onDisk string) {
	switch state {
	case stateCurrent:
		fmt.Fprintf(r.out, "%s %s\n", r.ok.Sprint("ok     "), f.Path)
	case stateMissing:
		fmt.Fprintf(r.out, "%s %s\n", r.missing.Sprint("missing"), f.Path)
	case stateStale:
		fmt.Fprintf(r.out, "%s %s\n", r.stale.Sprint("stale  "), f.Path)
		fmt.Fprintln(r.out, r.diff(onDisk, string(f.Source)))
	}
}

// reportOrphan reports a generated file no schema produces anymore.
func (r *reporter) reportOrphan(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.orphan.Sprint("orphan "), path)
}

// diff renders the change from `from` to `to`, colored for terminals and as
// a patch otherwise.
func (r *reporter) diff(from, to string) string {
	a, b, lines := r.dmp.DiffLinesToChars(from, to)
	diffs := r.dmp.DiffMain(a, b, false)
	diffs = r.dmp.DiffCharsToLines(diffs, lines)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	if r.colored {
		return r.dmp.DiffPrettyText(diffs)
	}

	return r.dmp.PatchToText(r.dmp.PatchMake(from, diffs))
}
