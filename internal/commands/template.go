// Where: cli/internal/commands/template.go
// What: template add/remove/list commands.
// Why: Manage user templates recorded in the global config.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/poruru/sprout/cli/internal/engine"
	"github.com/poruru/sprout/cli/internal/infra/config"
	"github.com/poruru/sprout/cli/internal/infra/fileops"
	"github.com/poruru/sprout/cli/internal/infra/source"
	"github.com/poruru/sprout/cli/internal/infra/ui"
)

var templateNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

func runTemplateAdd(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Template.Add
	if !templateNamePattern.MatchString(cmd.Name) {
		return exitWithError(out, fmt.Errorf("invalid template name %q (use lowercase letters, digits, '.', '_' or '-')", cmd.Name))
	}
	if deps.Sources == nil {
		return exitWithError(out, errors.New("template sources are not configured"))
	}

	cfgPath, cfg, err := loadGlobalConfig()
	if err != nil {
		return exitWithError(out, err)
	}
	catalog := newCatalog(deps, cfg)
	if catalog.IsBuiltin(cmd.Name) {
		return exitWithError(out, fmt.Errorf("template %q is built in and cannot be replaced", cmd.Name))
	}

	dir, err := deps.Sources.Fetch(deps.Context, cmd.Name, cmd.Source)
	if err != nil {
		return exitWithError(out, fmt.Errorf("fetch template: %w", err))
	}
	manifest, err := engine.LoadManifest(os.DirFS(dir))
	if err != nil {
		return exitWithError(out, err)
	}
	registry, err := newHookRegistry(InitCmd{}, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := registry.Lookup(manifest.Hooks); err != nil {
		return exitWithError(out, err)
	}

	cfg.AddTemplate(cmd.Name, config.TemplateEntry{
		Source: cmd.Source,
		Path:   dir,
		Hooks:  manifest.Hooks,
	}, deps.Now())
	if err := config.SaveGlobalConfig(cfgPath, cfg); err != nil {
		return exitWithError(out, err)
	}

	console := newUI(out)
	console.Block("📦", "Template registered", []ui.KeyValue{
		{Key: "Name", Value: cmd.Name},
		{Key: "Source", Value: cmd.Source},
		{Key: "Path", Value: dir},
		{Key: "Hooks", Value: manifest.Hooks},
	})
	console.Success(fmt.Sprintf("Use it with: sprout init <target> --template %s", cmd.Name))
	return 0
}

func runTemplateRemove(cli CLI, deps Dependencies, out io.Writer) int {
	name := cli.Template.Remove.Name
	cfgPath, cfg, err := loadGlobalConfig()
	if err != nil {
		return exitWithError(out, err)
	}
	if newCatalog(deps, cfg).IsBuiltin(name) {
		return exitWithError(out, fmt.Errorf("template %q is built in and cannot be removed", name))
	}
	entry, err := cfg.RemoveTemplate(name)
	if err != nil {
		if errors.Is(err, config.ErrTemplateNotFound) {
			return exitWithSuggestion(out, fmt.Sprintf("✗ %v", err), []string{"sprout template list"})
		}
		return exitWithError(out, err)
	}
	if source.IsS3URI(entry.Source) {
		if err := fileops.RemoveDir(entry.Path); err != nil {
			newUI(out).Warn(fmt.Sprintf("failed to remove cached copy %s: %v", entry.Path, err))
		}
	}
	if err := config.SaveGlobalConfig(cfgPath, cfg); err != nil {
		return exitWithError(out, err)
	}
	newUI(out).Success(fmt.Sprintf("Removed template %s", name))
	return 0
}

func runTemplateList(_ CLI, deps Dependencies, out io.Writer) int {
	_, cfg, err := loadGlobalConfig()
	if err != nil {
		return exitWithError(out, err)
	}
	infos := newCatalog(deps, cfg).List()
	rows := make([]ui.KeyValue, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, ui.KeyValue{Key: info.Name, Value: info.Location})
	}
	newUI(out).Block("📚", "Templates", rows)
	return 0
}
