// Package pipeline runs named steps in a fixed order with an explicit
// failure policy per step. A fatal failure short-circuits the run with an
// error. A halting failure stops the remaining steps without an error. A
// suppressed failure is logged and the run continues.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Policy decides what a step failure does to the run.
type Policy int

const (
	// Fatal failures abort the remaining steps and are returned to the caller.
	Fatal Policy = iota
	// Suppressed failures are logged and recorded; the run continues.
	Suppressed
	// Halt failures are logged and recorded; the remaining steps are not
	// run and the pipeline still completes without an error.
	Halt
)

func (p Policy) String() string {
	switch p {
	case Fatal:
		return "fatal"
	case Suppressed:
		return "suppressed"
	case Halt:
		return "halt"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Status is the outcome of a single step.
type Status string

const (
	StatusOK         Status = "ok"
	StatusSkipped    Status = "skipped"
	StatusSuppressed Status = "suppressed"
	StatusHalted     Status = "halted"
	StatusFailed     Status = "failed"
)

// Step is one unit of work.
type Step struct {
	Name   string
	Policy Policy
	// Skip, when non-nil and returning a non-empty reason, skips the step.
	Skip func() string
	Run  func(ctx context.Context) error
}

// Result records what happened to a step.
type Result struct {
	Step   string
	Status Status
	Reason string
	Err    error
}

// Report lists results for every step that was reached, in order.
type Report struct {
	Results []Result
}

// Status returns the status of the named step, or "" if it was not reached.
func (r Report) Status(step string) Status {
	for _, res := range r.Results {
		if res.Step == step {
			return res.Status
		}
	}
	return ""
}

// Suppressed returns the results whose failure was absorbed, including a
// halting failure.
func (r Report) Suppressed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusSuppressed || res.Status == StatusHalted {
			out = append(out, res)
		}
	}
	return out
}

// StepError wraps a fatal step failure with the step name.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline executes steps sequentially.
type Pipeline struct {
	steps  []Step
	logger *zap.Logger
}

// New creates a pipeline. A nil logger discards log output.
func New(logger *zap.Logger, steps ...Step) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{steps: steps, logger: logger}
}

// Run executes every step in order and returns the report. The error is a
// *StepError for the first fatal failure, or nil. Steps after a halting
// failure do not appear in the report.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	var report Report
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Step: step.Name, Status: StatusFailed, Err: err})
			return report, &StepError{Step: step.Name, Err: err}
		}

		if step.Skip != nil {
			if reason := step.Skip(); reason != "" {
				p.logger.Debug("step skipped", zap.String("step", step.Name), zap.String("reason", reason))
				report.Results = append(report.Results, Result{Step: step.Name, Status: StatusSkipped, Reason: reason})
				continue
			}
		}

		if step.Run == nil {
			return report, &StepError{Step: step.Name, Err: errors.New("step has no run function")}
		}

		p.logger.Debug("step started", zap.String("step", step.Name))
		err := step.Run(ctx)
		if err == nil {
			report.Results = append(report.Results, Result{Step: step.Name, Status: StatusOK})
			continue
		}

		if step.Policy == Suppressed {
			p.logger.Warn("step failed; continuing", zap.String("step", step.Name), zap.Error(err))
			report.Results = append(report.Results, Result{Step: step.Name, Status: StatusSuppressed, Err: err})
			continue
		}
		if step.Policy == Halt {
			p.logger.Warn("step failed; skipping remaining steps", zap.String("step", step.Name), zap.Error(err))
			report.Results = append(report.Results, Result{Step: step.Name, Status: StatusHalted, Err: err})
			return report, nil
		}

		report.Results = append(report.Results, Result{Step: step.Name, Status: StatusFailed, Err: err})
		return report, &StepError{Step: step.Name, Err: err}
	}
	return report, nil
}
