// Where: cli/internal/infra/source/source.go
// What: Resolve template sources (local directory or s3://bucket/prefix) to a local tree.
// Why: Registered templates are always rendered from a directory on disk.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/poruru/sprout/cli/internal/infra/fileops"
	"github.com/poruru/sprout/cli/internal/meta"
)

const s3Scheme = "s3://"

// ErrNotTemplate is returned when a fetched tree has no manifest.
var ErrNotTemplate = errors.New("not a template directory")

// Fetcher materializes a template source into a local directory.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (string, error)
}

// IsS3URI reports whether source uses the s3:// scheme.
func IsS3URI(source string) bool {
	return strings.HasPrefix(strings.TrimSpace(source), s3Scheme)
}

// ParseS3URI splits s3://bucket/prefix. The returned prefix is either
// empty or ends with "/".
func ParseS3URI(source string) (string, string, error) {
	trimmed := strings.TrimSpace(source)
	if !strings.HasPrefix(trimmed, s3Scheme) {
		return "", "", fmt.Errorf("not an s3 uri: %s", source)
	}
	rest := strings.TrimPrefix(trimmed, s3Scheme)
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("s3 uri has no bucket: %s", source)
	}
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return bucket, prefix, nil
}

// LocalSource accepts an existing template directory.
type LocalSource struct{}

// Fetch returns the absolute path of a directory that contains a manifest.
func (LocalSource) Fetch(_ context.Context, source string) (string, error) {
	dir, err := filepath.Abs(strings.TrimSpace(source))
	if err != nil {
		return "", fmt.Errorf("resolve template path: %w", err)
	}
	if !fileops.DirExists(dir) {
		return "", fmt.Errorf("template directory not found: %s", dir)
	}
	if err := requireManifest(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// S3Source downloads a template prefix into CacheDir.
type S3Source struct {
	Factory  ClientFactory
	CacheDir string
}

// Fetch downloads every object under the prefix, replacing any previous copy.
func (s S3Source) Fetch(ctx context.Context, source string) (string, error) {
	bucket, prefix, err := ParseS3URI(source)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s.CacheDir) == "" {
		return "", fmt.Errorf("s3 source: cache dir is required")
	}
	if s.Factory == nil {
		return "", fmt.Errorf("s3 source: client factory is required")
	}
	client, err := s.Factory.S3(ctx)
	if err != nil {
		return "", fmt.Errorf("create s3 client: %w", err)
	}
	keys, err := client.ListObjects(ctx, bucket, prefix)
	if err != nil {
		return "", fmt.Errorf("list s3://%s/%s: %w", bucket, prefix, err)
	}

	staging := s.CacheDir + ".partial"
	if err := fileops.RemoveDir(staging); err != nil {
		return "", err
	}
	downloaded := 0
	for _, key := range keys {
		rel := strings.TrimPrefix(key, prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		dest := filepath.Join(staging, filepath.FromSlash(path.Clean(rel)))
		if !fileops.WithinDir(staging, dest) {
			return "", fmt.Errorf("s3 object escapes template dir: %s", key)
		}
		if err := download(ctx, client, bucket, key, dest); err != nil {
			_ = fileops.RemoveDir(staging)
			return "", err
		}
		downloaded++
	}
	if downloaded == 0 {
		return "", fmt.Errorf("%w: s3://%s/%s is empty", ErrNotTemplate, bucket, prefix)
	}
	if err := requireManifest(staging); err != nil {
		_ = fileops.RemoveDir(staging)
		return "", err
	}
	if err := fileops.RemoveDir(s.CacheDir); err != nil {
		return "", err
	}
	if err := os.Rename(staging, s.CacheDir); err != nil {
		return "", fmt.Errorf("move template into cache: %w", err)
	}
	return s.CacheDir, nil
}

func download(ctx context.Context, client S3API, bucket, key, dest string) error {
	body, err := client.GetObject(ctx, bucket, key)
	if err != nil {
		return fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer body.Close()
	if err := fileops.WriteFromReader(dest, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func requireManifest(dir string) error {
	if !fileops.FileExists(filepath.Join(dir, meta.ManifestFile)) {
		return fmt.Errorf("%w: %s has no %s", ErrNotTemplate, dir, meta.ManifestFile)
	}
	return nil
}

// Resolver picks a fetcher by scheme. S3 templates are cached per name.
type Resolver struct {
	Factory  ClientFactory
	CacheDir func(name string) (string, error)
}

// Fetch materializes source for the template called name.
func (r Resolver) Fetch(ctx context.Context, name, source string) (string, error) {
	if !IsS3URI(source) {
		return LocalSource{}.Fetch(ctx, source)
	}
	if r.CacheDir == nil {
		return "", fmt.Errorf("s3 source: cache dir is required")
	}
	dir, err := r.CacheDir(name)
	if err != nil {
		return "", err
	}
	return S3Source{Factory: r.Factory, CacheDir: dir}.Fetch(ctx, source)
}
