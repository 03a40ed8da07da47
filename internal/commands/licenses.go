package commands

import (
	"fmt"
	"io"

	"github.com/poruru/sprout/cli/internal/domain/license"
	"github.com/poruru/sprout/cli/internal/infra/ui"
)

func runLicenses(_ CLI, _ Dependencies, out io.Writer) int {
	rows := make([]ui.KeyValue, 0, len(license.All()))
	for _, l := range license.All() {
		name := l.Name
		if l.ID == license.DefaultID {
			name += " (default)"
		}
		rows = append(rows, ui.KeyValue{Key: l.ID, Value: name})
	}
	newUI(out).Block("📜", fmt.Sprintf("Licenses (%d)", len(rows)), rows)
	return 0
}
