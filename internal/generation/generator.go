package generation

import (
	"context"

	"github.com/phrazzld/ideaspark-api/internal/domain"
)

// Generator defines the interface for generating business ideas from a
// description of the user's interests. It is the boundary between the HTTP
// layer and the external language model.
type Generator interface {
	// GenerateIdeas returns the ideas in the order the model produced them.
	// Failures are always *Error values of kind configuration, service or format.
	GenerateIdeas(ctx context.Context, interests string) ([]domain.Idea, error)
}

// Request is everything a Transport sends to the model for one generation.
type Request struct {
	// SystemInstruction establishes the model's role.
	SystemInstruction string

	// UserMessage embeds the user's interests.
	UserMessage string

	// Schema is the structured-output shape the model must answer with.
	Schema *Schema
}

// Transport sends a single request to a remote model and returns its raw
// text payload. Implementations must not retry.
type Transport interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// TransportFactory builds a Transport authorised with apiKey.
type TransportFactory func(ctx context.Context, apiKey string) (Transport, error)
