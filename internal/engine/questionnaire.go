// Where: cli/internal/engine/questionnaire.go
// What: Execute declared questions against pre-filled answers or a prompter.
// Why: Hooks only declare prompts; asking, defaulting and validation live here.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/poruru/sprout/cli/internal/infra/interaction"
)

// Questionnaire asks questions. With Interactive unset, defaults are used.
type Questionnaire struct {
	Prompter    interaction.Prompter
	Interactive bool
}

// Ask resolves every question in order. Pre-filled values win over prompts
// but still go through filtering and validation. Pre-filled keys that match
// no question are carried into the result unchanged.
func (q Questionnaire) Ask(questions []Question, prefilled map[string]any) (Answers, error) {
	answers := Answers{}
	for k, v := range prefilled {
		answers[k] = v
	}
	for _, question := range questions {
		if question.Name == "" {
			return nil, errors.New("question without a name")
		}
		var (
			value any
			err   error
		)
		if raw, ok := prefilled[question.Name]; ok {
			value, err = coerce(question, raw)
			if err != nil {
				return nil, fmt.Errorf("answer %s: %w", question.Name, err)
			}
		} else if q.Interactive && q.Prompter != nil {
			value, err = q.prompt(question)
			if err != nil {
				return nil, err
			}
		} else {
			value, err = coerce(question, question.Default)
			if err != nil {
				return nil, fmt.Errorf("answer %s: %w (pass --set %s=<value>)", question.Name, err, question.Name)
			}
		}
		answers[question.Name] = value
	}
	return answers, nil
}

func (q Questionnaire) prompt(question Question) (any, error) {
	message := question.Message
	if message == "" {
		message = question.Name
	}
	switch question.Kind {
	case KindConfirm:
		return q.Prompter.Confirm(message, question.defaultBool())
	case KindList:
		options := make([]interaction.SelectOption, 0, len(question.Choices))
		for _, c := range question.Choices {
			options = append(options, interaction.SelectOption{Label: c.Name, Value: c.Value})
		}
		return q.Prompter.SelectValue(message, options, question.defaultString())
	default:
		validate := func(value string) error {
			_, err := question.check(value)
			return err
		}
		raw, err := q.Prompter.Input(message, question.defaultString(), validate)
		if err != nil {
			return nil, err
		}
		return question.check(raw)
	}
}

func coerce(question Question, raw any) (any, error) {
	switch question.Kind {
	case KindConfirm:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case nil:
			return false, nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("expected a boolean, got %q", v)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("expected a boolean, got %v", v)
		}
	case KindList:
		value := toString(raw)
		if !question.hasChoice(value) {
			return nil, fmt.Errorf("%q is not one of the available choices", value)
		}
		return value, nil
	default:
		return question.check(toString(raw))
	}
}

func toString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
