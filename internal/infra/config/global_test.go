// Where: cli/internal/infra/config/global_test.go
// What: Tests for global config persistence and registry helpers.
// Why: Ensure the template registry round-trips and recent targets stay bounded.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru/sprout/cli/internal/meta"
)

func TestGlobalConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := GlobalConfig{
		Version: 1,
		Templates: map[string]TemplateEntry{
			"library": {
				Source:  "s3://templates/library",
				Path:    "/home/me/.sprout/templates/library",
				Hooks:   "npm-package",
				AddedAt: "2026-01-08T23:45:00Z",
			},
		},
		RecentTargets: []string{"/work/a", "/work/b"},
	}

	if err := SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save global config: %v", err)
	}
	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGlobalConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(DefaultGlobalConfig(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGlobalConfigRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("templates: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGlobalConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEnsureGlobalConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := EnsureGlobalConfig(path); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	// Existing files are left alone.
	if err := os.WriteFile(path, []byte("version: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := EnsureGlobalConfig(path); err != nil {
		t.Fatalf("ensure existing: %v", err)
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != 7 {
		t.Fatalf("existing config overwritten: %#v", cfg)
	}
}

func TestConfigPathHonorsHomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SPROUT_HOME", home)

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if path != filepath.Join(home, meta.ConfigFile) {
		t.Fatalf("unexpected path %s", path)
	}
	cache, err := TemplateCacheDir("lib")
	if err != nil {
		t.Fatal(err)
	}
	if cache != filepath.Join(home, meta.TemplatesDir, "lib") {
		t.Fatalf("unexpected cache dir %s", cache)
	}
}

func TestConfigPathDefaultsToUserHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SPROUT_HOME", "")
	t.Setenv("HOME", home)

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if path != filepath.Join(home, meta.HomeDir, meta.ConfigFile) {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestTemplateRegistry(t *testing.T) {
	cfg := DefaultGlobalConfig()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	cfg.AddTemplate("zeta", TemplateEntry{Source: "/src/zeta", Path: "/src/zeta", Hooks: "npm-package"}, now)
	cfg.AddTemplate("alpha", TemplateEntry{Source: "/src/alpha", Path: "/src/alpha", Hooks: "npm-package"}, now)

	if diff := cmp.Diff([]string{"alpha", "zeta"}, cfg.TemplateNames()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	entry, err := cfg.LookupTemplate("alpha")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if entry.AddedAt != "2026-03-14T09:00:00Z" {
		t.Fatalf("unexpected added_at %q", entry.AddedAt)
	}

	removed, err := cfg.RemoveTemplate("alpha")
	if err != nil || removed.Source != "/src/alpha" {
		t.Fatalf("remove: %#v %v", removed, err)
	}
	if _, err := cfg.RemoveTemplate("alpha"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if _, err := cfg.LookupTemplate("alpha"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestAddTemplateOnZeroValue(t *testing.T) {
	var cfg GlobalConfig
	cfg.AddTemplate("x", TemplateEntry{Path: "/x", AddedAt: "kept"}, time.Now())
	if cfg.Templates["x"].AddedAt != "kept" {
		t.Fatalf("explicit added_at must be kept: %#v", cfg.Templates["x"])
	}
}

func TestRecordTarget(t *testing.T) {
	cfg := DefaultGlobalConfig()
	cfg.RecordTarget("/work/a")
	cfg.RecordTarget("/work/b")
	cfg.RecordTarget(" /work/a ")
	cfg.RecordTarget("  ")

	if diff := cmp.Diff([]string{"/work/a", "/work/b"}, cfg.RecentTargets); diff != "" {
		t.Fatalf("recent mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTargetEnforcesLimit(t *testing.T) {
	cfg := DefaultGlobalConfig()
	for i := 0; i < meta.MaxRecentTargets+5; i++ {
		cfg.RecordTarget(fmt.Sprintf("/work/%d", i))
	}
	if len(cfg.RecentTargets) != meta.MaxRecentTargets {
		t.Fatalf("expected %d targets, got %d", meta.MaxRecentTargets, len(cfg.RecentTargets))
	}
	if cfg.RecentTargets[0] != fmt.Sprintf("/work/%d", meta.MaxRecentTargets+4) {
		t.Fatalf("most recent target must come first: %v", cfg.RecentTargets)
	}
}
