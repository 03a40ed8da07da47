// Where: cli/internal/templates/npmpkg/hooks.go
// What: Lifecycle hooks of the built-in npm-package template.
// Why: Gather author defaults, declare prompts, derive fields and finish the project on disk.
package npmpkg

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/poruru/sprout/cli/internal/constants"
	"github.com/poruru/sprout/cli/internal/domain/license"
	"github.com/poruru/sprout/cli/internal/domain/pipeline"
	"github.com/poruru/sprout/cli/internal/domain/project"
	"github.com/poruru/sprout/cli/internal/domain/slug"
	"github.com/poruru/sprout/cli/internal/engine"
	"github.com/poruru/sprout/cli/internal/infra/envutil"
	"github.com/poruru/sprout/cli/internal/infra/github"
	"go.uber.org/zap"
)

// Name is the hook-set name referenced by template.yaml.
const Name = "npm-package"

const (
	manifestTemplate = "package.json.tmpl"
	manifestFile     = "package.json"
	licenseFile      = "LICENSE"
	initialCommitMsg = "Initial commit"
)

// Step names reported by After.
const (
	StepRenameManifest = "rename manifest"
	StepWriteLicense   = "write license"
	StepInstall        = "install dependencies"
	StepGitInit        = "git init"
	StepGitRemote      = "git remote"
	StepGitAdd         = "git add"
	StepGitCommit      = "git commit"
)

// PackageManagers lists the supported install commands.
var PackageManagers = []string{"npm", "pnpm", "yarn"}

// Options configures the hooks.
type Options struct {
	GitHub         github.ProfileFetcher
	PackageManager string
	SkipCommit     bool
	Now            func() time.Time
	Logger         *zap.Logger
}

// Hooks implements engine.Hooks for the npm-package template.
type Hooks struct {
	opts Options
}

// New returns hooks with defaults applied.
func New(opts Options) (*Hooks, error) {
	if opts.PackageManager == "" {
		opts.PackageManager = "npm"
	}
	if !isPackageManager(opts.PackageManager) {
		return nil, fmt.Errorf("unsupported package manager %q (want one of %s)", opts.PackageManager, strings.Join(PackageManagers, ", "))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Hooks{opts: opts}, nil
}

// Lifecycle binds New(opts) for registration.
func Lifecycle(opts Options) (engine.Lifecycle, error) {
	h, err := New(opts)
	if err != nil {
		return nil, err
	}
	return engine.Bind[project.Ambient, project.Config](h), nil
}

func isPackageManager(name string) bool {
	for _, pm := range PackageManagers {
		if pm == name {
			return true
		}
	}
	return false
}

// Before collects author defaults. It never fails: a failed remote lookup
// falls back to local git config, and a failed fallback leaves fields empty.
func (h *Hooks) Before(ctx context.Context, u *engine.Utils) project.Ambient {
	ambient := h.collectAmbient(ctx, u)
	h.opts.Logger.Debug("collected author defaults",
		zap.Bool("remote", ambient.HasRemoteProfile()),
		zap.String("name", ambient.DefaultAuthorName()),
		zap.String("email", ambient.DefaultAuthorEmail()),
	)
	return ambient
}

func (h *Hooks) collectAmbient(ctx context.Context, u *engine.Utils) project.Ambient {
	ambient := project.Ambient{TargetPath: u.Target.Path()}

	if h.opts.GitHub != nil {
		profile, err := h.opts.GitHub.FetchUser(ctx)
		if err == nil {
			ambient.GitHubName = profile.Name
			ambient.GitHubEmail = profile.Email
			ambient.GitHubURL = profile.HTMLURL
			ambient.GitHubLogin = profile.Login
			return ambient
		}
		h.opts.Logger.Debug("github profile lookup failed", zap.Error(err))
	}

	name, err := gitConfig(ctx, u, "user.name")
	if err != nil {
		h.opts.Logger.Debug("git config lookup failed", zap.String("key", "user.name"), zap.Error(err))
		return ambient
	}
	ambient.GitName = name
	email, err := gitConfig(ctx, u, "user.email")
	if err != nil {
		h.opts.Logger.Debug("git config lookup failed", zap.String("key", "user.email"), zap.Error(err))
		return ambient
	}
	ambient.GitEmail = email
	return ambient
}

func gitConfig(ctx context.Context, u *engine.Utils, key string) (string, error) {
	lines, err := u.Target.Exec(ctx, "git", "config", key)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", errors.New("no output")
	}
	return strings.TrimSpace(lines[0]), nil
}

// Configure declares the prompts in display order.
func (h *Hooks) Configure(ambient project.Ambient) []engine.Question {
	defaultName := ""
	if ambient.TargetPath != "" {
		defaultName = slug.Make(filepath.Base(ambient.TargetPath))
	}
	choices := make([]engine.Choice, 0, len(license.All()))
	for _, l := range license.All() {
		choices = append(choices, engine.Choice{Name: l.Name, Value: l.ID})
	}

	return []engine.Question{
		{
			Name:     "projectName",
			Kind:     engine.KindInput,
			Message:  "Your project name (repo name or folder name):",
			Default:  defaultName,
			Filter:   slug.Make,
			Validate: required("project name"),
		},
		{
			Name:    "projectDescription",
			Kind:    engine.KindInput,
			Message: "Project description:",
		},
		{
			Name:    "isNpmPkg",
			Kind:    engine.KindConfirm,
			Message: "Is this project an NPM package?",
			Default: false,
		},
		{
			Name:    "authorName",
			Kind:    engine.KindInput,
			Message: "Author's name:",
			Default: ambient.DefaultAuthorName(),
		},
		{
			Name:    "authorEmail",
			Kind:    engine.KindInput,
			Message: "Author's email:",
			Default: ambient.DefaultAuthorEmail(),
		},
		{
			Name:     "githubAccount",
			Kind:     engine.KindInput,
			Message:  "GitHub username or organization:",
			Default:  ambient.GitHubLogin,
			Validate: required("GitHub account"),
		},
		{
			Name:    "license",
			Kind:    engine.KindList,
			Message: "Which license do you want to use?",
			Default: license.DefaultID,
			Choices: choices,
		},
	}
}

func required(label string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// BeforeRender derives the project configuration. It performs no I/O.
func (h *Hooks) BeforeRender(ambient project.Ambient, answers engine.Answers) (project.Config, error) {
	return project.Derive(ambient, project.Answers{
		ProjectName:        answers.String("projectName"),
		ProjectDescription: answers.String("projectDescription"),
		IsNpmPkg:           answers.Bool("isNpmPkg"),
		AuthorName:         answers.String("authorName"),
		AuthorEmail:        answers.String("authorEmail"),
		GitHubAccount:      answers.String("githubAccount"),
		License:            answers.String("license"),
	}, h.opts.Now()), nil
}

// After finalizes the generated tree. Manifest and license failures abort.
// An install, git init, remote or staging failure skips the remaining steps
// without failing the run. A commit failure is logged only.
func (h *Hooks) After(ctx context.Context, u *engine.Utils, cfg project.Config) (pipeline.Report, error) {
	locals := cfg.Locals()
	exec := func(name string, args ...string) func(context.Context) error {
		return func(ctx context.Context) error {
			_, err := u.Target.Exec(ctx, name, args...)
			return err
		}
	}

	steps := []pipeline.Step{
		{
			Name:   StepRenameManifest,
			Policy: pipeline.Fatal,
			Run: func(context.Context) error {
				return u.Target.Rename(manifestTemplate, manifestFile)
			},
		},
		{
			Name:   StepWriteLicense,
			Policy: pipeline.Fatal,
			Run: func(context.Context) error {
				content, err := u.Src.Read(license.ResourcePath(cfg.License))
				if err != nil {
					return err
				}
				return u.Target.Write(licenseFile, content, locals)
			},
		},
		{
			Name:   StepInstall,
			Policy: pipeline.Halt,
			Run: func(ctx context.Context) error {
				return u.Target.Run(ctx, h.opts.PackageManager, "install")
			},
		},
		{
			Name:   StepGitInit,
			Policy: pipeline.Halt,
			Run:    exec("git", "init", "--quiet"),
		},
		{
			Name:   StepGitRemote,
			Policy: pipeline.Halt,
			Skip: func() string {
				if cfg.RepositoryGitURL == "" {
					return "no repository url"
				}
				return ""
			},
			Run: exec("git", "remote", "add", "origin", cfg.RepositoryGitURL),
		},
		{
			Name:   StepGitAdd,
			Policy: pipeline.Halt,
			Run:    exec("git", "add", "."),
		},
		{
			Name:   StepGitCommit,
			Policy: pipeline.Suppressed,
			Skip: func() string {
				if h.opts.SkipCommit {
					return "--skip-commit"
				}
				if envutil.IsTruthy(constants.EnvSkipCommit) {
					return constants.EnvSkipCommit + " is set"
				}
				return ""
			},
			Run: exec("git", "commit", "-m", initialCommitMsg),
		},
	}
	return pipeline.New(h.opts.Logger, steps...).Run(ctx)
}
