// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "sprout"
	Slug      = "sprout"
	EnvPrefix = "SPROUT"

	// Directory Layout
	HomeDir      = ".sprout"
	ConfigFile   = "config.yaml"
	TemplatesDir = "templates"

	// Template Layout
	ManifestFile    = "template.yaml"
	DefaultRootDir  = "root"
	LicensesDir     = "licenses"
	DefaultTemplate = "npm-package"

	// Recent targets kept in the global config.
	MaxRecentTargets = 10
)
