// Where: cli/internal/engine/utils.go
// What: File and process handles passed to hooks.
// Why: Hooks read template resources and touch the target only through these handles.
package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/poruru/sprout/cli/internal/domain/template"
	"github.com/poruru/sprout/cli/internal/infra/fileops"
	"github.com/poruru/sprout/cli/internal/infra/shell"
)

// Utils bundles the template source and generation target.
type Utils struct {
	Src    Src
	Target Target
}

// NewUtils builds handles over a template tree and a target directory.
func NewUtils(src fs.FS, targetDir string, runner shell.CommandRunner) *Utils {
	return &Utils{
		Src:    Src{fsys: src},
		Target: Target{dir: targetDir, runner: runner},
	}
}

// Src is a read-only view of the template tree.
type Src struct {
	fsys fs.FS
}

// Read returns the content of a template resource, e.g. "licenses/MIT.txt".
func (s Src) Read(name string) (string, error) {
	if s.fsys == nil {
		return "", fmt.Errorf("read %s: template source not set", name)
	}
	data, err := fs.ReadFile(s.fsys, path.Clean(name))
	if err != nil {
		return "", fmt.Errorf("read template resource %s: %w", name, err)
	}
	return string(data), nil
}

// Target is the generation target directory.
type Target struct {
	dir    string
	runner shell.CommandRunner
}

// Path returns the absolute target path.
func (t Target) Path() string {
	return t.dir
}

func (t Target) resolve(name string) (string, error) {
	full := filepath.Join(t.dir, filepath.FromSlash(name))
	if !fileops.WithinDir(t.dir, full) {
		return "", fmt.Errorf("path %s escapes target directory", name)
	}
	return full, nil
}

// Read returns the content of a generated file.
func (t Target) Read(name string) (string, error) {
	full, err := t.resolve(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// Write creates or replaces a file. When locals is non-nil the content is
// rendered as a template first.
func (t Target) Write(name, content string, locals map[string]any) error {
	full, err := t.resolve(name)
	if err != nil {
		return err
	}
	if locals != nil {
		content, err = template.RenderString(name, content, locals)
		if err != nil {
			return err
		}
	}
	if err := fileops.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Rename moves a file inside the target.
func (t Target) Rename(from, to string) error {
	src, err := t.resolve(from)
	if err != nil {
		return err
	}
	dst, err := t.resolve(to)
	if err != nil {
		return err
	}
	if err := fileops.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, err)
	}
	return nil
}

// Exec runs a command in the target directory and returns its output lines.
func (t Target) Exec(ctx context.Context, name string, args ...string) ([]string, error) {
	if t.runner == nil {
		return nil, fmt.Errorf("exec %s: no command runner", name)
	}
	out, err := t.runner.RunOutput(ctx, t.dir, name, args...)
	if err != nil {
		return shell.Lines(out), err
	}
	return shell.Lines(out), nil
}

// Run runs a command in the target directory, streaming its output.
func (t Target) Run(ctx context.Context, name string, args ...string) error {
	if t.runner == nil {
		return fmt.Errorf("run %s: no command runner", name)
	}
	return t.runner.Run(ctx, t.dir, name, args...)
}
