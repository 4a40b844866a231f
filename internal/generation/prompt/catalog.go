// Package prompt loads the prompt catalogue: the system instruction, the user
// message template, schema descriptions and the user-facing messages shown
// when generation fails.
package prompt

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned when a catalogue cannot be parsed or is incomplete.
var ErrInvalidCatalog = errors.New("invalid prompt catalogue")

var validate = validator.New()

// SchemaText holds the human-readable descriptions attached to the
// structured-output schema sent to the model.
type SchemaText struct {
	Ideas       string `yaml:"ideas"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Messages are the user-facing texts for each failure kind.
type Messages struct {
	MissingCredential string `yaml:"missing_credential" validate:"required"`
	ServiceFailure    string `yaml:"service_failure" validate:"required"`
	FormatFailure     string `yaml:"format_failure" validate:"required"`
}

// Catalog is a parsed prompt catalogue.
type Catalog struct {
	SystemInstruction string     `yaml:"system_instruction" validate:"required"`
	UserTemplate      string     `yaml:"user_template" validate:"required"`
	IdeaCount         int        `yaml:"idea_count" validate:"gt=0,lte=20"`
	Schema            SchemaText `yaml:"schema"`
	Messages          Messages   `yaml:"messages"`
	Examples          []string   `yaml:"examples"`

	tmpl *template.Template
}

// templateData is what the user template is executed with.
type templateData struct {
	Interests string
	Count     int
}

// Default returns the catalogue embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalogue from path. An empty path yields the default catalogue.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidCatalog, path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalogue.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	tmpl, err := template.New("user").Option("missingkey=error").Parse(c.UserTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse user template: %v", ErrInvalidCatalog, err)
	}
	c.tmpl = tmpl

	return &c, nil
}

// UserMessage renders the user template with the interests embedded verbatim.
// Any string is accepted, including the empty string.
func (c *Catalog) UserMessage(interests string) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, templateData{Interests: interests, Count: c.IdeaCount}); err != nil {
		return "", fmt.Errorf("failed to execute user template: %w", err)
	}
	return buf.String(), nil
}
