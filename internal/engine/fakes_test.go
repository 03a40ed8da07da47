package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/poruru/sprout/cli/internal/domain/pipeline"
	"github.com/poruru/sprout/cli/internal/infra/interaction"
)

type fakePrompter struct {
	inputs   []string
	confirms []bool
	selects  []string
	titles   []string
	// rejected records values refused by the validate callback.
	rejected []string
}

func (p *fakePrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	p.titles = append(p.titles, title)
	for len(p.inputs) > 0 {
		value := p.inputs[0]
		p.inputs = p.inputs[1:]
		if value == "" {
			value = defaultValue
		}
		if validate != nil {
			if err := validate(value); err != nil {
				p.rejected = append(p.rejected, value)
				continue
			}
		}
		return value, nil
	}
	return "", errors.New("no more inputs")
}

func (p *fakePrompter) Confirm(title string, defaultValue bool) (bool, error) {
	p.titles = append(p.titles, title)
	if len(p.confirms) == 0 {
		return defaultValue, nil
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func (p *fakePrompter) SelectValue(title string, options []interaction.SelectOption, defaultValue string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.selects) == 0 {
		return defaultValue, nil
	}
	value := p.selects[0]
	p.selects = p.selects[1:]
	return value, nil
}

type runCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls   []runCall
	outputs map[string]string
	errs    map[string]error
}

func (r *fakeRunner) key(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, runCall{dir: dir, name: name, args: args})
	return r.errs[r.key(name, args)]
}

func (r *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, runCall{dir: dir, name: name, args: args})
	key := r.key(name, args)
	return []byte(r.outputs[key]), r.errs[key]
}

type testAmbient struct {
	Target string
	User   string
}

type testConfig struct {
	Name  string
	Loud  bool
	Owner string
}

func (c testConfig) Locals() map[string]any {
	return map[string]any{"name": c.Name, "loud": c.Loud, "owner": c.Owner}
}

// testHooks records stage order and writes a marker file after rendering.
type testHooks struct {
	stages    *[]string
	renderErr error
	afterErr  error
}

func (h testHooks) Before(ctx context.Context, u *Utils) testAmbient {
	*h.stages = append(*h.stages, "before")
	lines, _ := u.Target.Exec(ctx, "whoami")
	user := ""
	if len(lines) > 0 {
		user = lines[0]
	}
	return testAmbient{Target: u.Target.Path(), User: user}
}

func (h testHooks) Configure(a testAmbient) []Question {
	*h.stages = append(*h.stages, "configure")
	return []Question{
		{Name: "name", Kind: KindInput, Message: "Name", Default: "demo", Validate: nonEmpty},
		{Name: "loud", Kind: KindConfirm, Message: "Loud?", Default: false},
		{Name: "owner", Kind: KindInput, Message: "Owner", Default: a.User},
	}
}

func (h testHooks) BeforeRender(_ testAmbient, answers Answers) (testConfig, error) {
	*h.stages = append(*h.stages, "beforeRender")
	if h.renderErr != nil {
		return testConfig{}, h.renderErr
	}
	return testConfig{Name: answers.String("name"), Loud: answers.Bool("loud"), Owner: answers.String("owner")}, nil
}

func (h testHooks) After(ctx context.Context, u *Utils, cfg testConfig) (pipeline.Report, error) {
	*h.stages = append(*h.stages, "after")
	steps := []pipeline.Step{
		{Name: "marker", Policy: pipeline.Fatal, Run: func(context.Context) error {
			return u.Target.Write("AFTER", "{{ .name }} by {{ .owner }}", cfg.Locals())
		}},
		{Name: "fail", Policy: pipeline.Fatal, Run: func(context.Context) error { return h.afterErr }},
	}
	return pipeline.New(nil, steps...).Run(ctx)
}

func nonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("required")
	}
	return nil
}
