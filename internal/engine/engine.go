// Where: cli/internal/engine/engine.go
// What: Scaffolding run: hooks, questionnaire, render pass.
// Why: One place owns the stage order every template goes through.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/poruru/sprout/cli/internal/domain/pipeline"
	"github.com/poruru/sprout/cli/internal/domain/template"
	"github.com/poruru/sprout/cli/internal/infra/fileops"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
	"github.com/poruru/sprout/cli/internal/infra/shell"
	"go.uber.org/zap"
)

// ErrTargetNotEmpty is returned when the target has content and force is off.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// Engine runs templates.
type Engine struct {
	Hooks    *Registry
	Prompter interaction.Prompter
	Runner   shell.CommandRunner
	Logger   *zap.Logger
}

// InitOptions controls one generation run.
type InitOptions struct {
	Template    Template
	Target      string
	Answers     map[string]any
	Interactive bool
	Force       bool
}

// Result summarizes a completed run.
type Result struct {
	Target  string
	Answers Answers
	Locals  map[string]any
	Files   []string
	Report  pipeline.Report
}

// Init generates a project into opts.Target.
func (e *Engine) Init(ctx context.Context, opts InitOptions) (Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if e.Hooks == nil {
		return Result{}, errors.New("engine: hook registry is not configured")
	}
	if opts.Template.FS == nil {
		return Result{}, errors.New("engine: template is required")
	}

	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return Result{}, fmt.Errorf("resolve target: %w", err)
	}
	empty, err := fileops.IsEmptyDir(target)
	if err != nil {
		return Result{}, fmt.Errorf("inspect target: %w", err)
	}
	if !empty && !opts.Force {
		return Result{}, fmt.Errorf("%w: %s (use --force to generate anyway)", ErrTargetNotEmpty, target)
	}

	manifest := opts.Template.Manifest
	lifecycle, err := e.Hooks.Lookup(manifest.Hooks)
	if err != nil {
		return Result{}, fmt.Errorf("template %s: %w", opts.Template.Name, err)
	}
	if err := fileops.EnsureDir(target); err != nil {
		return Result{}, fmt.Errorf("create target: %w", err)
	}

	utils := NewUtils(opts.Template.FS, target, e.Runner)
	logger.Debug("running before hook", zap.String("template", opts.Template.Name), zap.String("target", target))
	session := lifecycle.Before(ctx, utils)

	questionnaire := Questionnaire{Prompter: e.Prompter, Interactive: opts.Interactive}
	answers, err := questionnaire.Ask(session.Configure(), opts.Answers)
	if err != nil {
		return Result{}, err
	}
	if manifest.AnswersSchema != "" {
		schema, err := fs.ReadFile(opts.Template.FS, path.Clean(manifest.AnswersSchema))
		if err != nil {
			return Result{}, fmt.Errorf("read answers schema: %w", err)
		}
		if err := ValidateAnswers(schema, manifest.AnswersSchema, answers); err != nil {
			return Result{}, err
		}
	}

	cfg, err := session.BeforeRender(answers)
	if err != nil {
		return Result{}, fmt.Errorf("before render: %w", err)
	}
	locals := cfg.Locals()

	files, err := template.RenderTree(opts.Template.FS, manifest.Root, locals, manifest.Ignore)
	if err != nil {
		return Result{}, fmt.Errorf("render template: %w", err)
	}
	written := make([]string, 0, len(files))
	for _, file := range files {
		dest := filepath.Join(target, filepath.FromSlash(file.Path))
		// Embedded trees report read-only modes; generated files stay owner-writable.
		if err := fileops.WriteFile(dest, file.Content, file.Mode|0o644); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", file.Path, err)
		}
		written = append(written, file.Path)
	}
	logger.Debug("rendered template", zap.Int("files", len(written)))

	report, err := session.After(ctx, utils)
	result := Result{Target: target, Answers: answers, Locals: locals, Files: written, Report: report}
	if err != nil {
		return result, fmt.Errorf("after hook: %w", err)
	}
	return result, nil
}
