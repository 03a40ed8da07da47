// Where: cli/internal/domain/template/renderer.go
// What: Render template strings and whole template trees.
// Why: Keep text/template + sprig handling in one pure place, independent from I/O.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// File is a rendered file relative to the tree root.
type File struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
	// Raw is set when the content was copied without rendering.
	Raw bool
}

// RenderString renders content as a text template. Referencing a key that
// is missing from data is an error.
func RenderString(name, content string, data any) (string, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderTree renders every regular file below root in fsys. Files matching
// one of the ignore globs are skipped; files that look binary are returned
// unchanged. Results are sorted by path.
func RenderTree(fsys fs.FS, root string, data any, ignore []string) ([]File, error) {
	root = path.Clean(root)
	var files []File
	err := fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
		if rel == "" {
			return nil
		}
		if Ignored(rel, ignore) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		file := File{Path: rel, Mode: info.Mode().Perm()}
		if IsBinary(content) {
			file.Content = content
			file.Raw = true
			files = append(files, file)
			return nil
		}
		rendered, err := RenderString(rel, string(content), data)
		if err != nil {
			return err
		}
		file.Content = []byte(rendered)
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Ignored reports whether rel (slash separated) matches any glob, either as
// a whole path or by its base name.
func Ignored(rel string, globs []string) bool {
	base := path.Base(rel)
	for _, glob := range globs {
		glob = strings.TrimSpace(glob)
		if glob == "" {
			continue
		}
		if ok, _ := path.Match(glob, rel); ok {
			return true
		}
		if ok, _ := path.Match(glob, base); ok {
			return true
		}
	}
	return false
}

// IsBinary reports whether content contains a NUL byte within the first 8KiB.
func IsBinary(content []byte) bool {
	const sniff = 8 << 10
	if len(content) > sniff {
		content = content[:sniff]
	}
	return bytes.IndexByte(content, 0) >= 0
}
