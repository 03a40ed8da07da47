// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep the engine focused on orchestration.
package interaction

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/poruru/sprout/cli/internal/constants"
	"github.com/poruru/sprout/cli/internal/infra/envutil"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
// Implementations own the re-ask loop: validate is called on every submission
// and a non-nil error keeps the prompt open.
type Prompter interface {
	Input(title, defaultValue string, validate func(string) error) (string, error)
	Confirm(title string, defaultValue bool) (bool, error)
	SelectValue(title string, options []SelectOption, defaultValue string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether prompts may be shown.
// SPROUT_INTERACTIVE overrides TTY detection when set to a boolean value.
func IsInteractive() bool {
	if value, ok := envutil.BoolValue(constants.EnvSproutInteractive); ok {
		return value
	}
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
