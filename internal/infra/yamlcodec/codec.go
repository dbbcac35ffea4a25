package yamlcodec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/schemalens/schemalens/internal/domain"
)

// Codec decodes YAML documents into the same value shapes the JSON codec
// produces, so YAML instances and schemas flow through the core unchanged.
type Codec struct{}

func (Codec) Decode(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, &domain.ParseError{Msg: fmt.Sprintf("invalid yaml: %v", err)}
	}
	return normalize(value)
}

// normalize rewrites yaml.v3 output into JSON value shapes: string-keyed
// maps and int64 integers. Non-string map keys are rejected rather than
// coerced, since JSON Schema has no meaning for them.
func normalize(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			normalized, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[key] = normalized
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				return nil, &domain.ParseError{Msg: fmt.Sprintf("non-string mapping key %v", key)}
			}
			normalized, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[name] = normalized
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			normalized, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	case int:
		return int64(v), nil
	default:
		return v, nil
	}
}
