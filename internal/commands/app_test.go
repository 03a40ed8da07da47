// Where: cli/internal/commands/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure command routing remains stable.
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/sprout/cli/internal/version"
	"go.uber.org/zap"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	if code := Run(nil, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "sprout init <target>") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"version"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), version.GetVersion()) {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"deploy"}, Dependencies{Out: &out}); code == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if !strings.Contains(out.String(), "✗") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunRejectsUnsupportedPackageManager(t *testing.T) {
	var out bytes.Buffer
	code := Run([]string{"init", t.TempDir(), "--package-manager", "bun"}, Dependencies{Out: &out})
	if code == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if !strings.Contains(out.String(), "package-manager") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunVerboseRaisesLogLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	var out bytes.Buffer
	if code := Run([]string{"-v", "version"}, Dependencies{Out: &out, LogLevel: &level}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if level.Level() != zap.DebugLevel {
		t.Fatalf("expected debug level, got %s", level.Level())
	}
}

func TestRunLoadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("SPROUT_TEST_ENV_FILE=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPROUT_TEST_ENV_FILE", "")
	if err := os.Unsetenv("SPROUT_TEST_ENV_FILE"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := Run([]string{"--env-file", envFile, "version"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if got := os.Getenv("SPROUT_TEST_ENV_FILE"); got != "loaded" {
		t.Fatalf("env file not loaded, got %q", got)
	}
}

func TestRunWarnsOnMissingEnvFile(t *testing.T) {
	var out bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.env")
	if code := Run([]string{"--env-file", missing, "version"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "failed to load env file") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunLicensesMarksDefault(t *testing.T) {
	t.Setenv("SPROUT_NO_EMOJI", "1")
	var out bytes.Buffer
	if code := Run([]string{"licenses"}, Dependencies{Out: &out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	text := out.String()
	if !strings.Contains(text, "Licenses (13)") {
		t.Fatalf("unexpected output: %q", text)
	}
	if !strings.Contains(text, "Apache License 2.0 (default)") {
		t.Fatalf("default license not marked: %q", text)
	}
	if strings.Contains(text, "MIT License (default)") {
		t.Fatalf("only one default expected: %q", text)
	}
}
