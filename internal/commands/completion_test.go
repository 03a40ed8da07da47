package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompletionScripts(t *testing.T) {
	cases := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{"complete -F _sprout_completion sprout", "add remove list", "--package-manager"}},
		{shell: "zsh", want: []string{"#compdef sprout", "_values 'template' add remove list", "npm pnpm yarn"}},
		{shell: "fish", want: []string{"complete -c sprout", "__fish_seen_subcommand_from template", "-l package-manager"}},
	}
	for _, tc := range cases {
		t.Run(tc.shell, func(t *testing.T) {
			var out bytes.Buffer
			if code := Run([]string{"completion", tc.shell}, Dependencies{Out: &out}); code != 0 {
				t.Fatalf("expected exit code 0, got %d: %s", code, out.String())
			}
			for _, want := range tc.want {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("missing %q in:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestCollectCompletionCommands(t *testing.T) {
	model := collectCompletionCommands(CLI{})
	if strings.Join(model.commands, " ") != "init template licenses completion version" {
		t.Fatalf("unexpected commands: %v", model.commands)
	}
	if got := strings.Join(model.subcommands["completion"], " "); got != "bash zsh fish" {
		t.Fatalf("unexpected completion subcommands: %q", got)
	}
	if len(model.initFlags) == 0 || !strings.Contains(strings.Join(model.initFlags, " "), "--skip-commit") {
		t.Fatalf("unexpected init flags: %v", model.initFlags)
	}
}
