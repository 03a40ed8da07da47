// Where: cli/internal/engine/question.go
// What: Prompt declarations and the answers map.
// Why: Let hooks declare prompts as data so the engine can validate or prefill them.
package engine

import "fmt"

// Kind selects the prompt widget.
type Kind int

const (
	KindInput Kind = iota
	KindConfirm
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfirm:
		return "confirm"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Choice is one entry of a list question.
type Choice struct {
	Name  string
	Value string
}

// Question declares one prompt. Default is a string for input and list
// questions and a bool for confirm questions. Filter and Validate apply to
// input answers.
type Question struct {
	Name     string
	Kind     Kind
	Message  string
	Default  any
	Choices  []Choice
	Filter   func(string) string
	Validate func(string) error
}

// Answers maps question names to string or bool values.
type Answers map[string]any

// String returns the answer as a string, or "" when absent.
func (a Answers) String(name string) string {
	switch v := a[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the answer as a bool, or false when absent.
func (a Answers) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

func (q Question) defaultString() string {
	switch v := q.Default.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (q Question) defaultBool() bool {
	v, _ := q.Default.(bool)
	return v
}

// check filters and validates an input answer.
func (q Question) check(value string) (string, error) {
	if q.Filter != nil {
		value = q.Filter(value)
	}
	if q.Validate != nil {
		if err := q.Validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (q Question) hasChoice(value string) bool {
	for _, c := range q.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
