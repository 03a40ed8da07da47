// Where: cli/internal/infra/shell/runner_test.go
// What: Tests for command execution helpers.
// Why: Keep output splitting and logging decoration predictable.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRunner struct {
	dir    string
	name   string
	args   []string
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir, f.name, f.args = dir, name, args
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir, f.name, f.args = dir, name, args
	return f.output, f.err
}

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{name: "empty", output: "", want: []string{}},
		{name: "single with newline", output: "Jane Doe\n", want: []string{"Jane Doe"}},
		{name: "crlf", output: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "keeps inner blank", output: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines([]byte(tt.output))); diff != "" {
				t.Fatalf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandLineQuotesSpaces(t *testing.T) {
	got := CommandLine("git", "commit", "-m", "Initial commit")
	if got != `git commit -m "Initial commit"` {
		t.Fatalf("CommandLine() = %q", got)
	}
}

func TestLoggingRunnerDelegatesAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	next := &fakeRunner{output: []byte("ok\n")}
	runner := LoggingRunner{Next: next, Logger: zap.New(core)}

	out, err := runner.RunOutput(context.Background(), "/work", "git", "init", "--quiet")
	if err != nil {
		t.Fatalf("RunOutput: %v", err)
	}
	if string(out) != "ok\n" || next.dir != "/work" || next.name != "git" {
		t.Fatalf("unexpected delegation: out=%q dir=%q name=%q", out, next.dir, next.name)
	}
	if logs.FilterMessage("command finished").Len() != 1 {
		t.Fatalf("expected one finished entry, got %v", logs.All())
	}

	next.err = errors.New("exit status 1")
	if err := runner.Run(context.Background(), "/work", "git", "add", "."); err == nil {
		t.Fatal("expected error")
	}
	if logs.FilterMessage("command failed").Len() != 1 {
		t.Fatalf("expected one failed entry, got %v", logs.All())
	}
}

func TestLoggingRunnerWithoutLogger(t *testing.T) {
	next := &fakeRunner{}
	runner := LoggingRunner{Next: next}
	if err := runner.Run(context.Background(), "", "npm", "install"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestExecRunnerOutputExcludesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := ExecRunner{}.RunOutput(context.Background(), t.TempDir(), "sh", "-c", "echo warning >&2; echo Jane Doe")
	if err != nil {
		t.Fatalf("RunOutput: %v", err)
	}
	if diff := cmp.Diff([]string{"Jane Doe"}, Lines(out)); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestExecRunnerOutputErrorCarriesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	_, err := ExecRunner{}.RunOutput(context.Background(), t.TempDir(), "sh", "-c", "echo key not set >&2; exit 1")
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected wrapped exit error, got %T", err)
	}
	if !strings.Contains(err.Error(), "key not set") {
		t.Fatalf("error should include stderr: %v", err)
	}
}
