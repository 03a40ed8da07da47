// Where: cli/internal/infra/config/global.go
// What: Global config load/save.
// Why: Manage <home>/.sprout/config.yaml (template registry, recent targets) consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/poruru/sprout/cli/internal/infra/envutil"
	"github.com/poruru/sprout/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// homeEnvSuffix names the SPROUT_* variable that relocates the home dir.
const homeEnvSuffix = "HOME"

// ErrTemplateNotFound is returned when a template name is not registered.
var ErrTemplateNotFound = errors.New("template not registered")

// GlobalConfig represents ~/.sprout/config.yaml.
type GlobalConfig struct {
	Version       int                      `yaml:"version"`
	Templates     map[string]TemplateEntry `yaml:"templates,omitempty"`
	RecentTargets []string                 `yaml:"recent_targets,omitempty"`
}

// TemplateEntry records where a user template came from and where it lives.
type TemplateEntry struct {
	Source  string `yaml:"source"`
	Path    string `yaml:"path"`
	Hooks   string `yaml:"hooks"`
	AddedAt string `yaml:"added_at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:       1,
		Templates:     map[string]TemplateEntry{},
		RecentTargets: []string{},
	}
}

// HomeDir returns SPROUT_HOME when set, otherwise ~/.sprout.
func HomeDir() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(homeEnvSuffix)); override != "" {
		return filepath.Clean(override), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(home, meta.HomeDir), nil
}

// ConfigPath returns the path to the global config file.
func ConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.ConfigFile), nil
}

// TemplateCacheDir returns the directory that holds downloaded template trees.
func TemplateCacheDir(name string) (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.TemplatesDir, name), nil
}

// EnsureGlobalConfig creates the config file if it doesn't exist.
func EnsureGlobalConfig(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return fmt.Errorf("stat global config: %w", err)
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
// A missing file yields the default configuration.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	cfg := DefaultGlobalConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	if cfg.Templates == nil {
		cfg.Templates = map[string]TemplateEntry{}
	}
	if cfg.RecentTargets == nil {
		cfg.RecentTargets = []string{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create global config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}

// AddTemplate registers or replaces a template entry.
func (c *GlobalConfig) AddTemplate(name string, entry TemplateEntry, now time.Time) {
	if c.Templates == nil {
		c.Templates = map[string]TemplateEntry{}
	}
	if entry.AddedAt == "" {
		entry.AddedAt = now.Format(time.RFC3339)
	}
	c.Templates[name] = entry
}

// RemoveTemplate deletes a template entry and returns it.
func (c *GlobalConfig) RemoveTemplate(name string) (TemplateEntry, error) {
	entry, ok := c.Templates[name]
	if !ok {
		return TemplateEntry{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	delete(c.Templates, name)
	return entry, nil
}

// LookupTemplate returns the entry registered under name.
func (c GlobalConfig) LookupTemplate(name string) (TemplateEntry, error) {
	entry, ok := c.Templates[name]
	if !ok {
		return TemplateEntry{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return entry, nil
}

// TemplateNames returns registered names in sorted order.
func (c GlobalConfig) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordTarget moves target to the front of the recent list, dropping
// duplicates and anything beyond the limit.
func (c *GlobalConfig) RecordTarget(target string) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return
	}
	next := make([]string, 0, meta.MaxRecentTargets)
	seen := map[string]struct{}{}
	add := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		if len(next) >= meta.MaxRecentTargets {
			return
		}
		next = append(next, value)
		seen[value] = struct{}{}
	}
	add(trimmed)
	for _, entry := range c.RecentTargets {
		add(entry)
	}
	c.RecentTargets = next
}
