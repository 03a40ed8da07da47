// Where: cli/internal/commands/command_context.go
// What: Shared error exits and global config access for CLI commands.
// Why: Reduce duplicated error formatting and config loading across commands.
package commands

import (
	"fmt"
	"io"

	"github.com/poruru/sprout/cli/internal/engine"
	"github.com/poruru/sprout/cli/internal/infra/config"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	plainUI(out).Warn(fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints an error with suggested next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := newUI(out)
	ui.Warn(message)
	if len(suggestions) > 0 {
		ui.Info("")
		ui.Info("💡 Next steps:")
		for _, s := range suggestions {
			ui.Info(fmt.Sprintf("   - %s", s))
		}
	}
	return 1
}

// loadGlobalConfig returns the config path and its parsed content.
func loadGlobalConfig() (string, config.GlobalConfig, error) {
	path, err := config.ConfigPath()
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	return path, cfg, nil
}

// newCatalog combines built-in templates with registered ones.
func newCatalog(deps Dependencies, cfg config.GlobalConfig) engine.Catalog {
	registered := make(map[string]string, len(cfg.Templates))
	for name, entry := range cfg.Templates {
		registered[name] = entry.Path
	}
	return engine.Catalog{Builtin: deps.Builtin, Registered: registered}
}
