// Where: cli/internal/engine/answers.go
// What: Pre-filled answers from --answers files and --set flags, plus schema validation.
// Why: Non-interactive runs need a reproducible way to answer every prompt.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

// LoadAnswersFile reads a YAML or JSON object of answers.
func LoadAnswersFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert answers to json: %w", err)
	}
	var answers map[string]any
	if err := json.Unmarshal(jsonData, &answers); err != nil {
		return nil, fmt.Errorf("answers file must contain an object: %w", err)
	}
	if answers == nil {
		answers = map[string]any{}
	}
	return answers, nil
}

// ParseSetFlags converts key=value pairs into answers. Values stay strings;
// confirm questions coerce them later.
func ParseSetFlags(values []string) (map[string]any, error) {
	out := map[string]any{}
	for _, raw := range values {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", raw)
		}
		out[key] = value
	}
	return out, nil
}

// MergeAnswers overlays later maps onto earlier ones.
func MergeAnswers(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// ValidateAnswers checks answers against a JSON schema document.
func ValidateAnswers(schema []byte, name string, answers Answers) error {
	url := "sprout://schemas/" + name
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(schema)); err != nil {
		return fmt.Errorf("load answers schema: %w", err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile answers schema: %w", err)
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("answers do not match schema: %w", err)
	}
	return nil
}
