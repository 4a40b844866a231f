package generation

import "github.com/phrazzld/ideaspark-api/internal/generation/prompt"

// SchemaType is a JSON type name used in a Schema.
type SchemaType string

// Supported schema types.
const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema is a provider-neutral description of the structured output the
// model must produce. Transports translate it into their SDK's schema type.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// IdeaEnvelopeSchema describes {ideas: [{title, description}]} with every
// field required.
func IdeaEnvelopeSchema(text prompt.SchemaText) *Schema {
	idea := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       {Type: TypeString, Description: text.Title},
			"description": {Type: TypeString, Description: text.Description},
		},
		Required: []string{"title", "description"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"ideas": {Type: TypeArray, Description: text.Ideas, Items: idea},
		},
		Required: []string{"ideas"},
	}
}

// JSONSchema renders the schema as a JSON Schema document. Objects are closed
// (additionalProperties=false), which strict structured-output modes require.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}

	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}

	if s.Type == TypeObject {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
		if len(s.Required) > 0 {
			out["required"] = append([]string(nil), s.Required...)
		}
	}

	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}

	return out
}
