// Where: cli/internal/commands/init.go
// What: init command.
// Why: Resolve a template, gather answers, and run the generation engine.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poruru/sprout/cli/internal/domain/pipeline"
	"github.com/poruru/sprout/cli/internal/engine"
	"github.com/poruru/sprout/cli/internal/infra/config"
	"github.com/poruru/sprout/cli/internal/infra/ui"
	"github.com/poruru/sprout/cli/internal/templates/npmpkg"
	"go.uber.org/zap"
)

// newHookRegistry registers every compiled-in hook set with flag-derived options.
func newHookRegistry(cmd InitCmd, deps Dependencies) (*engine.Registry, error) {
	registry := engine.NewRegistry()
	lifecycle, err := npmpkg.Lifecycle(npmpkg.Options{
		GitHub:         deps.GitHub,
		PackageManager: cmd.PackageManager,
		SkipCommit:     cmd.SkipCommit,
		Now:            deps.Now,
		Logger:         deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	if err := registry.Register(npmpkg.Name, lifecycle); err != nil {
		return nil, err
	}
	return registry, nil
}

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Init
	cfgPath, cfg, err := loadGlobalConfig()
	if err != nil {
		return exitWithError(out, err)
	}

	catalog := newCatalog(deps, cfg)
	tmpl, err := catalog.Resolve(cmd.Template)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownTemplate) {
			return exitWithSuggestion(out, fmt.Sprintf("✗ %v", err), []string{
				"sprout template list",
				"sprout template add <name> <dir|s3://bucket/prefix>",
			})
		}
		return exitWithError(out, err)
	}

	answers, err := collectPrefilled(cmd)
	if err != nil {
		return exitWithError(out, err)
	}

	registry, err := newHookRegistry(cmd, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	interactive := !cmd.Yes && deps.Prompter != nil && deps.Interactive()
	eng := &engine.Engine{
		Hooks:    registry,
		Prompter: deps.Prompter,
		Runner:   deps.Runner,
		Logger:   deps.Logger,
	}
	result, err := eng.Init(deps.Context, engine.InitOptions{
		Template:    tmpl,
		Target:      cmd.Target,
		Answers:     answers,
		Interactive: interactive,
		Force:       cmd.Force,
	})
	if err != nil {
		if errors.Is(err, engine.ErrTargetNotEmpty) {
			return exitWithSuggestion(out, fmt.Sprintf("✗ %v", err), []string{
				"choose an empty directory",
				"sprout init <target> --force",
			})
		}
		if len(result.Files) > 0 {
			printReport(newUI(out), result.Report)
		}
		return exitWithError(out, err)
	}

	console := newUI(out)
	rows := []ui.KeyValue{
		{Key: "Project", Value: result.Answers.String("projectName")},
		{Key: "Template", Value: tmpl.Name},
		{Key: "Target", Value: result.Target},
		{Key: "Files", Value: len(result.Files)},
	}
	for _, step := range result.Report.Results {
		rows = append(rows, ui.KeyValue{Key: step.Step, Value: describeResult(step)})
	}
	console.Block("🌱", "Project generated", rows)
	for _, failed := range result.Report.Suppressed() {
		console.Warn(fmt.Sprintf("%s failed: %v", failed.Step, failed.Err))
	}
	console.Success(fmt.Sprintf("Created %s", result.Target))

	cfg.RecordTarget(result.Target)
	if err := config.SaveGlobalConfig(cfgPath, cfg); err != nil {
		deps.Logger.Warn("failed to record recent target", zap.Error(err))
	}
	return 0
}

func collectPrefilled(cmd InitCmd) (map[string]any, error) {
	fromFile := map[string]any{}
	if strings.TrimSpace(cmd.Answers) != "" {
		loaded, err := engine.LoadAnswersFile(cmd.Answers)
		if err != nil {
			return nil, err
		}
		fromFile = loaded
	}
	fromFlags, err := engine.ParseSetFlags(cmd.Set)
	if err != nil {
		return nil, err
	}
	return engine.MergeAnswers(fromFile, fromFlags), nil
}

func printReport(out ui.UserInterface, report pipeline.Report) {
	if len(report.Results) == 0 {
		return
	}
	rows := make([]ui.KeyValue, 0, len(report.Results))
	for _, step := range report.Results {
		rows = append(rows, ui.KeyValue{Key: step.Step, Value: describeResult(step)})
	}
	out.Block("🧰", "Post-generation steps", rows)
}

func describeResult(result pipeline.Result) string {
	switch result.Status {
	case pipeline.StatusSkipped:
		return fmt.Sprintf("%s (%s)", result.Status, result.Reason)
	case pipeline.StatusSuppressed, pipeline.StatusHalted, pipeline.StatusFailed:
		if result.Err != nil {
			return fmt.Sprintf("%s: %v", result.Status, result.Err)
		}
	}
	return string(result.Status)
}
