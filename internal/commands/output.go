// Where: cli/internal/commands/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and raw line output.
package commands

import (
	"io"
	"os"
	"strings"

	"github.com/poruru/sprout/cli/internal/constants"
	"github.com/poruru/sprout/cli/internal/infra/envutil"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
	"github.com/poruru/sprout/cli/internal/infra/ui"
)

func newUI(out io.Writer) ui.UserInterface {
	styled := false
	if file, ok := out.(*os.File); ok {
		styled = interaction.IsTerminal(file)
	}
	return ui.NewConsoleUI(out, !envutil.IsTruthy(constants.EnvSproutNoEmoji), styled)
}

func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewPlainUI(out)
}

func writeString(out io.Writer, text string) {
	if out == nil || text == "" {
		return
	}
	_, _ = io.WriteString(out, text)
}

func writeLine(out io.Writer, line string) {
	if out == nil {
		return
	}
	if strings.HasSuffix(line, "\n") {
		_, _ = io.WriteString(out, line)
		return
	}
	_, _ = io.WriteString(out, line+"\n")
}
