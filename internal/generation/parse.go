package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/ideaspark-api/internal/domain"
)

// ParseIdeas decodes a raw model payload into ideas. Surrounding whitespace is
// ignored. The payload must be a JSON object whose "ideas" field is an array
// of objects with string "title" and "description" fields; extra fields are
// ignored. Order is preserved and an empty array yields an empty slice.
func ParseIdeas(raw string) ([]domain.Idea, error) {
	payload := strings.TrimSpace(raw)
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("%w (%d bytes)", ErrMalformedPayload, len(payload))
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	envelope, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s, want object", ErrUnexpectedShape, jsonKind(decoded))
	}

	rawIdeas, present := envelope["ideas"]
	if !present {
		return nil, fmt.Errorf("%w: missing \"ideas\" field", ErrUnexpectedShape)
	}

	items, ok := rawIdeas.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: \"ideas\" is %s, want array", ErrUnexpectedShape, jsonKind(rawIdeas))
	}

	ideas := make([]domain.Idea, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: idea %d is %s, want object", ErrUnexpectedShape, i, jsonKind(item))
		}

		title, ok := obj["title"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: idea %d has no string \"title\"", ErrUnexpectedShape, i)
		}

		description, ok := obj["description"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: idea %d has no string \"description\"", ErrUnexpectedShape, i)
		}

		ideas = append(ideas, domain.NewIdea(title, description))
	}

	return ideas, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
