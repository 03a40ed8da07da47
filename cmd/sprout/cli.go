// Where: cli/cmd/sprout/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/poruru/sprout/cli/assets"
	"github.com/poruru/sprout/cli/internal/commands"
	"github.com/poruru/sprout/cli/internal/infra/config"
	"github.com/poruru/sprout/cli/internal/infra/github"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
	"github.com/poruru/sprout/cli/internal/infra/shell"
	"github.com/poruru/sprout/cli/internal/infra/source"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loadBuiltin      = assets.Builtin
	newS3Factory     = source.NewAWSClientFactory
	newGitHubFetcher = func() github.ProfileFetcher { return github.NewClientFromEnv() }
)

// newLogger returns a console logger on stderr. The level starts at warn
// and is raised to debug by --verbose.
func newLogger() (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	logger, err := cfg.Build()
	if err != nil {
		return nil, level, err
	}
	return logger, level, nil
}

// buildDependencies constructs all runtime dependencies required by the CLI.
// Returns the dependencies, a flush function for the logger, and any initialization error.
func buildDependencies(ctx context.Context) (commands.Dependencies, func(), error) {
	logger, level, err := newLogger()
	if err != nil {
		return commands.Dependencies{}, nil, err
	}
	flush := func() { _ = logger.Sync() }

	builtin, err := loadBuiltin()
	if err != nil {
		flush()
		return commands.Dependencies{}, nil, err
	}

	deps := commands.Dependencies{
		Context:  ctx,
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Runner:   shell.LoggingRunner{Next: shell.ExecRunner{}, Logger: logger},
		GitHub:   newGitHubFetcher(),
		Sources: source.Resolver{
			Factory:  newS3Factory(),
			CacheDir: config.TemplateCacheDir,
		},
		Builtin:     builtin,
		Logger:      logger,
		LogLevel:    &level,
		Interactive: interaction.IsInteractive,
	}
	return deps, flush, nil
}
