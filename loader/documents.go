package loader

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

func decodeJSON(data []byte) ([]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse menu JSON: %w", err)
	}
	return asList(v)
}

func decodeYAML(data []byte) ([]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse menu YAML: %w", err)
	}
	return asList(normalizeYAML(v))
}

// normalizeYAML converts yaml.v2's map[interface{}]interface{} into
// map[string]any, recursively, so records look the same as JSON ones.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []interface{}:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalizeYAML(val)
		}
		return out
	}
	return v
}

func asList(v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, v)
	}
	return list, nil
}
