package gemini

import (
	"github.com/phrazzld/ideaspark-api/internal/generation"
	"google.golang.org/genai"
)

// toGenaiSchema converts a generation.Schema into the genai representation.
func toGenaiSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Items:       toGenaiSchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}

	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}

	return out
}

func toGenaiType(t generation.SchemaType) genai.Type {
	switch t {
	case generation.TypeObject:
		return genai.TypeObject
	case generation.TypeArray:
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}
