// Where: cli/internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/sprout/cli/internal/infra/github"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
	"github.com/poruru/sprout/cli/internal/infra/shell"
	"github.com/poruru/sprout/cli/internal/meta"
	"github.com/poruru/sprout/cli/internal/version"
	"go.uber.org/zap"
)

// TemplateFetcher materializes a template source into a local directory.
type TemplateFetcher interface {
	Fetch(ctx context.Context, name, source string) (string, error)
}

// Dependencies holds all injected dependencies required for CLI command execution.
// Tests swap prompter, runner, GitHub client and template sources for fakes.
type Dependencies struct {
	Context     context.Context
	Out         io.Writer
	Prompter    interaction.Prompter
	Runner      shell.CommandRunner
	GitHub      github.ProfileFetcher
	Sources     TemplateFetcher
	Builtin     map[string]fs.FS
	Logger      *zap.Logger
	LogLevel    *zap.AtomicLevel
	Now         func() time.Time
	Interactive func() bool
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Verbose    bool          `short:"v" help:"Enable debug logging"`
	EnvFile    string        `name:"env-file" help:"Path to .env file"`
	Init       InitCmd       `cmd:"" help:"Generate a project from a template"`
	Template   TemplateCmd   `cmd:"" help:"Manage registered templates"`
	Licenses   LicensesCmd   `cmd:"" help:"List licenses offered by the npm-package template"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	InitCmd struct {
		Target         string   `arg:"" help:"Directory to generate the project into"`
		Template       string   `short:"t" default:"npm-package" help:"Template name"`
		Answers        string   `short:"a" help:"YAML or JSON file with answers"`
		Set            []string `short:"s" sep:"none" help:"Answer override (key=value), repeatable"`
		Yes            bool     `short:"y" help:"Use defaults for unanswered questions instead of prompting"`
		SkipCommit     bool     `name:"skip-commit" help:"Do not create the initial commit"`
		PackageManager string   `name:"package-manager" default:"npm" enum:"npm,pnpm,yarn" help:"Package manager used for install"`
		Force          bool     `help:"Generate into a non-empty directory"`
	}
	TemplateCmd struct {
		Add    TemplateAddCmd    `cmd:"" help:"Register a template from a directory or s3://bucket/prefix"`
		Remove TemplateRemoveCmd `cmd:"" help:"Unregister a template"`
		List   TemplateListCmd   `cmd:"" help:"List available templates"`
	}
	TemplateAddCmd struct {
		Name   string `arg:"" help:"Template name"`
		Source string `arg:"" help:"Local directory or s3://bucket/prefix"`
	}
	TemplateRemoveCmd struct {
		Name string `arg:"" help:"Template name"`
	}
	TemplateListCmd struct{}
	LicensesCmd     struct{}
	VersionCmd      struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	deps = withDefaults(deps)

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Project scaffolding from templates."),
		kong.Writers(out, out),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Verbose && deps.LogLevel != nil {
		deps.LogLevel.SetLevel(zap.DebugLevel)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			newUI(out).Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			newUI(out).Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	newUI(out).Warn("unknown command")
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Interactive == nil {
		deps.Interactive = interaction.IsInteractive
	}
	return deps
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"init <target>":                runInit,
		"template add <name> <source>": runTemplateAdd,
		"template remove <name>":       runTemplateRemove,
		"template list":                runTemplateList,
		"licenses":                     runLicenses,
		"completion bash":              func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":               func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish":              func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":                      func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	newUI(out).Info(version.GetVersion())
	return 0
}

// runNoArgs handles the case when sprout is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := newUI(out)
	ui.Info("Usage:")
	ui.Info("  sprout init <target> [--template npm-package] [--answers file] [--set key=value] [--yes]")
	ui.Info("  sprout template add|remove|list")
	ui.Info("")
	ui.Info("Try: sprout --help")
	return 0
}
