// Where: cli/internal/commands/mock_prompter_test.go
// What: Test doubles for interaction-dependent command tests.
// Why: Provide deterministic prompts, commands and lookups without TTY or network.
package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poruru/sprout/cli/assets"
	"github.com/poruru/sprout/cli/internal/infra/github"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
)

type mockPrompter struct {
	inputs   map[string]string
	confirms map[string]bool
	selects  map[string]string

	titles []string
}

func (m *mockPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	m.titles = append(m.titles, title)
	value, ok := m.inputs[title]
	if !ok {
		value = defaultValue
	}
	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (m *mockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	m.titles = append(m.titles, title)
	if value, ok := m.confirms[title]; ok {
		return value, nil
	}
	return defaultValue, nil
}

func (m *mockPrompter) SelectValue(title string, options []interaction.SelectOption, defaultValue string) (string, error) {
	m.titles = append(m.titles, title)
	if value, ok := m.selects[title]; ok {
		return value, nil
	}
	if defaultValue != "" {
		return defaultValue, nil
	}
	if len(options) == 0 {
		return "", errors.New("no options")
	}
	return options[0].Value, nil
}

type fakeRunner struct {
	calls []string
	errs  map[string]error
}

func (r *fakeRunner) record(name string, args []string) error {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.calls = append(r.calls, key)
	return r.errs[key]
}

func (r *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) error {
	return r.record(name, args)
}

func (r *fakeRunner) RunOutput(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	return nil, r.record(name, args)
}

type fakeGitHub struct {
	profile github.Profile
	err     error
}

func (f fakeGitHub) FetchUser(context.Context) (github.Profile, error) {
	return f.profile, f.err
}

type fakeSources struct {
	dir string
	err error

	fetched []string
}

func (f *fakeSources) Fetch(_ context.Context, name, source string) (string, error) {
	f.fetched = append(f.fetched, name+"="+source)
	return f.dir, f.err
}

// testDeps returns dependencies with a sandboxed home and no real side effects.
func testDeps(t *testing.T) (Dependencies, *fakeRunner) {
	t.Helper()
	t.Setenv("SPROUT_HOME", t.TempDir())
	t.Setenv("SPROUT_SKIP_COMMIT", "")
	t.Setenv("SPROUT_NO_EMOJI", "1")
	builtin, err := assets.Builtin()
	if err != nil {
		t.Fatalf("builtin templates: %v", err)
	}
	runner := &fakeRunner{}
	deps := Dependencies{
		Context:     context.Background(),
		Runner:      runner,
		GitHub:      fakeGitHub{err: github.ErrNoToken},
		Builtin:     builtin,
		Now:         func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) },
		Interactive: func() bool { return false },
	}
	return deps, runner
}

func writeTemplateDir(t *testing.T, hooks string) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "name: custom\nhooks: " + hooks + "\n"
	if err := os.WriteFile(filepath.Join(dir, "template.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "root"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}
