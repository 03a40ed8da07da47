// Where: cli/internal/engine/manifest.go
// What: template.yaml parsing.
// Why: The manifest names the hook set and the layout of a template tree.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/poruru/sprout/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// Manifest describes a template tree.
type Manifest struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Hooks         string   `yaml:"hooks"`
	Root          string   `yaml:"root,omitempty"`
	AnswersSchema string   `yaml:"answers_schema,omitempty"`
	Ignore        []string `yaml:"ignore,omitempty"`
}

// ParseManifest decodes and validates a manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("decode %s: %w", meta.ManifestFile, err)
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Hooks = strings.TrimSpace(m.Hooks)
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("%s: name is required", meta.ManifestFile)
	}
	if m.Hooks == "" {
		return Manifest{}, fmt.Errorf("%s: hooks is required", meta.ManifestFile)
	}
	if strings.TrimSpace(m.Root) == "" {
		m.Root = meta.DefaultRootDir
	}
	return m, nil
}

// LoadManifest reads the manifest at the top of a template tree.
func LoadManifest(fsys fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(fsys, meta.ManifestFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", meta.ManifestFile, err)
	}
	return ParseManifest(data)
}
