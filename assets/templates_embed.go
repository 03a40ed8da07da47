// Where: cli/assets/templates_embed.go
// What: Embed the built-in template trees.
// Why: The CLI ships usable templates without any registration step.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates/npm-package
var templatesFS embed.FS

// NpmPackageName is the catalog name of the built-in npm-package template.
const NpmPackageName = "npm-package"

// Builtin returns every embedded template keyed by name.
func Builtin() (map[string]fs.FS, error) {
	sub, err := fs.Sub(templatesFS, "templates/"+NpmPackageName)
	if err != nil {
		return nil, fmt.Errorf("open embedded template %s: %w", NpmPackageName, err)
	}
	return map[string]fs.FS{NpmPackageName: sub}, nil
}
