// Where: cli/internal/commands/completion.go
// What: Shell completion command implementation.
// Why: Complete subcommands and init flags for bash, zsh, and fish.
package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/sprout/cli/internal/meta"
	"github.com/poruru/sprout/cli/internal/templates/npmpkg"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

type completionModel struct {
	commands    []string
	subcommands map[string][]string
	initFlags   []string
}

func (m completionModel) parents() []string {
	names := make([]string, 0, len(m.subcommands))
	for name := range m.subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runCompletionBash(cli CLI, out io.Writer) int {
	model := collectCompletionCommands(cli)

	var caseParts []string
	for _, cmd := range model.parents() {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(model.subcommands[cmd], " "))
		caseParts = append(caseParts, part)
	}
	caseParts = append(caseParts, fmt.Sprintf(`        init)
            if [[ "${prev}" == "--package-manager" ]]; then
                COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
                return 0
            fi
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
                return 0
            fi
            COMPREPLY=( $(compgen -d -- "${cur}") )
            return 0
            ;;`, strings.Join(npmpkg.PackageManagers, " "), strings.Join(model.initFlags, " ")))

	script := `_%[1]s_completion() {
    local cur prev cmd
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd="${COMP_WORDS[1]}"

    if [[ ${COMP_CWORD} -le 1 ]]; then
        COMPREPLY=( $(compgen -W "%[3]s" -- "${cur}") )
        return 0
    fi

    case "${cmd}" in
%[2]s
    esac
}
complete -F _%[1]s_completion %[1]s
`
	writeString(out, fmt.Sprintf(script, meta.AppName, strings.Join(caseParts, "\n"), strings.Join(model.commands, " ")))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	model := collectCompletionCommands(cli)

	script := `#compdef %[1]s
_%[1]s_completion() {
  local -a commands
  commands=(%[2]s)
  local cmd="${words[2]}"

  if [[ $CURRENT -eq 2 ]]; then
    _values 'commands' ${commands[@]}
    return
  fi

%[3]s
}
_%[1]s_completion "$@"
`

	var subBlocks strings.Builder
	for _, cmd := range model.parents() {
		subBlocks.WriteString(fmt.Sprintf(`  if [[ "${cmd}" == "%s" && $CURRENT -eq 3 ]]; then
    _values '%s' %s
    return
  fi
`, cmd, cmd, strings.Join(model.subcommands[cmd], " ")))
	}
	subBlocks.WriteString(fmt.Sprintf(`  if [[ "${cmd}" == "init" ]]; then
    _arguments '--package-manager[package manager]:manager:(%s)' '*:target:_files -/'
    return
  fi
`, strings.Join(npmpkg.PackageManagers, " ")))

	writeString(out, fmt.Sprintf(script, meta.AppName, strings.Join(model.commands, " "), subBlocks.String()))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	model := collectCompletionCommands(cli)
	name := meta.AppName
	writeLine(out, fmt.Sprintf("complete -c %s -f -n \"__fish_use_subcommand\" -a \"%s\"", name, strings.Join(model.commands, " ")))
	for _, cmd := range model.parents() {
		writeLine(out, fmt.Sprintf("complete -c %s -f -n \"__fish_seen_subcommand_from %s\" -a \"%s\"", name, cmd, strings.Join(model.subcommands[cmd], " ")))
	}
	writeLine(out, fmt.Sprintf("complete -c %s -n \"__fish_seen_subcommand_from init\" -l package-manager -x -a \"%s\"", name, strings.Join(npmpkg.PackageManagers, " ")))
	return 0
}

func collectCompletionCommands(cli CLI) completionModel {
	parser, _ := kong.New(&cli)
	model := completionModel{subcommands: make(map[string][]string)}

	for _, node := range parser.Model.Children {
		if node.Hidden || strings.HasPrefix(node.Name, "__") {
			continue
		}
		model.commands = append(model.commands, node.Name)
		if node.Name == "init" {
			for _, flag := range node.Flags {
				if flag.Hidden {
					continue
				}
				model.initFlags = append(model.initFlags, "--"+flag.Name)
			}
		}
		if len(node.Children) > 0 {
			var subs []string
			for _, sub := range node.Children {
				if sub.Hidden || strings.HasPrefix(sub.Name, "__") {
					continue
				}
				subs = append(subs, sub.Name)
			}
			if len(subs) > 0 {
				model.subcommands[node.Name] = subs
			}
		}
	}

	return model
}
