package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogResolve(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "template.yaml"), []byte("name: lib\nhooks: npm-package\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	catalog := Catalog{
		Builtin: map[string]fs.FS{
			"npm-package": fstest.MapFS{"template.yaml": {Data: []byte("name: npm-package\nhooks: npm-package\n")}},
		},
		Registered: map[string]string{"lib": dir},
	}

	builtin, err := catalog.Resolve("npm-package")
	if err != nil {
		t.Fatalf("resolve builtin: %v", err)
	}
	if !builtin.Builtin || builtin.Manifest.Hooks != "npm-package" {
		t.Fatalf("unexpected builtin %#v", builtin)
	}

	lib, err := catalog.Resolve("lib")
	if err != nil {
		t.Fatalf("resolve registered: %v", err)
	}
	if lib.Builtin || lib.Location != dir || lib.Manifest.Name != "lib" {
		t.Fatalf("unexpected registered %#v", lib)
	}

	if _, err := catalog.Resolve("missing"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestCatalogResolveBrokenManifest(t *testing.T) {
	catalog := Catalog{Registered: map[string]string{"broken": t.TempDir()}}
	if _, err := catalog.Resolve("broken"); err == nil {
		t.Fatal("expected manifest error")
	}
}

func TestCatalogList(t *testing.T) {
	catalog := Catalog{
		Builtin:    map[string]fs.FS{"npm-package": fstest.MapFS{}},
		Registered: map[string]string{"zeta": "/z", "alpha": "/a", "npm-package": "/shadow"},
	}
	want := []TemplateInfo{
		{Name: "npm-package", Builtin: true, Location: "(built-in)"},
		{Name: "alpha", Location: "/a"},
		{Name: "zeta", Location: "/z"},
	}
	if diff := cmp.Diff(want, catalog.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !catalog.IsBuiltin("npm-package") || catalog.IsBuiltin("alpha") {
		t.Fatal("unexpected IsBuiltin results")
	}
}
