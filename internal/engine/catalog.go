// Where: cli/internal/engine/catalog.go
// What: Resolve template names to trees (built-in embedded or registered directories).
// Why: Give built-in and user-registered templates a single lookup path.
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// ErrUnknownTemplate is returned when a template name resolves to nothing.
var ErrUnknownTemplate = errors.New("unknown template")

// Template is a resolved template tree with its manifest.
type Template struct {
	Name     string
	FS       fs.FS
	Manifest Manifest
	Builtin  bool
	Location string
}

// TemplateInfo is a catalog listing entry.
type TemplateInfo struct {
	Name     string
	Builtin  bool
	Location string
}

// Catalog knows every template available to init.
type Catalog struct {
	Builtin    map[string]fs.FS
	Registered map[string]string
}

// IsBuiltin reports whether name is reserved by a built-in template.
func (c Catalog) IsBuiltin(name string) bool {
	_, ok := c.Builtin[name]
	return ok
}

// Resolve loads the manifest of the named template.
func (c Catalog) Resolve(name string) (Template, error) {
	if fsys, ok := c.Builtin[name]; ok {
		return loadTemplate(name, fsys, true, "(built-in)")
	}
	if dir, ok := c.Registered[name]; ok {
		return loadTemplate(name, os.DirFS(dir), false, dir)
	}
	return Template{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
}

// List returns built-ins first, then registered templates, each sorted by name.
func (c Catalog) List() []TemplateInfo {
	var builtins, registered []TemplateInfo
	for name := range c.Builtin {
		builtins = append(builtins, TemplateInfo{Name: name, Builtin: true, Location: "(built-in)"})
	}
	for name, dir := range c.Registered {
		if c.IsBuiltin(name) {
			continue
		}
		registered = append(registered, TemplateInfo{Name: name, Location: dir})
	}
	sort.Slice(builtins, func(i, j int) bool { return builtins[i].Name < builtins[j].Name })
	sort.Slice(registered, func(i, j int) bool { return registered[i].Name < registered[j].Name })
	return append(builtins, registered...)
}

func loadTemplate(name string, fsys fs.FS, builtin bool, location string) (Template, error) {
	manifest, err := LoadManifest(fsys)
	if err != nil {
		return Template{}, fmt.Errorf("template %s: %w", name, err)
	}
	return Template{Name: name, FS: fsys, Manifest: manifest, Builtin: builtin, Location: location}, nil
}
