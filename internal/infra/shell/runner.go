// Where: cli/internal/infra/shell/runner.go
// What: External command execution for templates and git lookups.
// Why: Keep os/exec behind an interface so hooks can be tested with fakes.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// RunOutput captures stdout only. Stderr is attached to the returned error.
func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return output, fmt.Errorf("run %s: %w: %s", name, err, detail)
		}
		return output, fmt.Errorf("run %s: %w", name, err)
	}
	return output, nil
}

// LoggingRunner decorates a CommandRunner with debug logging.
type LoggingRunner struct {
	Next   CommandRunner
	Logger *zap.Logger
}

func (r LoggingRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	start := time.Now()
	err := r.Next.Run(ctx, dir, name, args...)
	r.log(dir, name, args, start, err)
	return err
}

func (r LoggingRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	start := time.Now()
	out, err := r.Next.RunOutput(ctx, dir, name, args...)
	r.log(dir, name, args, start, err)
	return out, err
}

func (r LoggingRunner) log(dir, name string, args []string, start time.Time, err error) {
	if r.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("command", CommandLine(name, args...)),
		zap.String("dir", dir),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		r.Logger.Debug("command failed", append(fields, zap.Error(err))...)
		return
	}
	r.Logger.Debug("command finished", fields...)
}

// Lines splits captured output into lines, dropping a trailing empty line.
func Lines(output []byte) []string {
	text := strings.ReplaceAll(string(output), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// CommandLine renders name and args for display.
func CommandLine(name string, args ...string) string {
	parts := append([]string{name}, args...)
	for i, part := range parts {
		if strings.ContainsAny(part, " \t\"'") {
			parts[i] = fmt.Sprintf("%q", part)
		}
	}
	return strings.Join(parts, " ")
}
