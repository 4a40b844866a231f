package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ideaspark-api/internal/credential"
	"github.com/phrazzld/ideaspark-api/internal/domain"
	"github.com/phrazzld/ideaspark-api/internal/generation/prompt"
	"github.com/phrazzld/ideaspark-api/internal/redact"
)

// IdeaGenerator implements Generator on top of a Transport. It holds no
// per-call state; concurrent calls are served independently.
type IdeaGenerator struct {
	logger      *slog.Logger
	credentials credential.Source
	clients     *ClientCache
	catalog     *prompt.Catalog
	schema      *Schema
}

var _ Generator = (*IdeaGenerator)(nil)

// NewIdeaGenerator creates an IdeaGenerator.
//
// Parameters:
//   - logger: structured logger for operation logging
//   - credentials: where the API key is resolved on every call
//   - clients: lazily built transport cache
//   - catalog: prompts, schema descriptions and user-facing messages
func NewIdeaGenerator(
	logger *slog.Logger,
	credentials credential.Source,
	clients *ClientCache,
	catalog *prompt.Catalog,
) (*IdeaGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if credentials == nil {
		return nil, errors.New("credential source cannot be nil")
	}
	if clients == nil {
		return nil, errors.New("client cache cannot be nil")
	}
	if catalog == nil {
		return nil, errors.New("prompt catalogue cannot be nil")
	}

	return &IdeaGenerator{
		logger:      logger,
		credentials: credentials,
		clients:     clients,
		catalog:     catalog,
		schema:      IdeaEnvelopeSchema(catalog.Schema),
	}, nil
}

// GenerateIdeas asks the model for ideas matching interests.
//
// The credential is resolved before anything touches the network, so a
// missing key fails fast with a configuration error. Transport failures are
// service errors and payloads that do not match the envelope are format
// errors. No retries are attempted.
func (g *IdeaGenerator) GenerateIdeas(ctx context.Context, interests string) ([]domain.Idea, error) {
	transport, err := g.transport(ctx)
	if err != nil {
		return nil, err
	}

	req, err := g.BuildRequest(interests)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to build generation request", "error", err)
		return nil, &Error{Kind: KindConfiguration, Message: g.catalog.Messages.FormatFailure, Err: err}
	}

	g.logger.InfoContext(ctx, "requesting ideas from language model",
		"interests_length", len(interests))

	raw, err := transport.Generate(ctx, req)
	if err != nil {
		g.logger.ErrorContext(ctx, "language model call failed",
			"error", redact.Error(err))
		return nil, &Error{
			Kind:    KindService,
			Message: fmt.Sprintf("%s: %s", g.catalog.Messages.ServiceFailure, redact.Secrets(err.Error())),
			Err:     err,
		}
	}

	ideas, err := ParseIdeas(raw)
	if err != nil {
		g.logger.WarnContext(ctx, "language model returned an invalid payload",
			"error", err,
			"payload_length", len(raw))
		return nil, &Error{Kind: KindFormat, Message: g.catalog.Messages.FormatFailure, Err: err}
	}

	g.logger.InfoContext(ctx, "ideas generated", "idea_count", len(ideas))
	return ideas, nil
}

// BuildRequest assembles the system instruction, the user message and the
// envelope schema for interests.
func (g *IdeaGenerator) BuildRequest(interests string) (Request, error) {
	msg, err := g.catalog.UserMessage(interests)
	if err != nil {
		return Request{}, err
	}

	return Request{
		SystemInstruction: g.catalog.SystemInstruction,
		UserMessage:       msg,
		Schema:            g.schema,
	}, nil
}

// Verify resolves the credential and constructs the transport without calling
// the model. It reports the same configuration error GenerateIdeas would.
func (g *IdeaGenerator) Verify(ctx context.Context) error {
	_, err := g.transport(ctx)
	return err
}

func (g *IdeaGenerator) transport(ctx context.Context) (Transport, error) {
	key, err := g.credentials.Resolve(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "language model credential unavailable", "error", err)
		return nil, &Error{Kind: KindConfiguration, Message: g.catalog.Messages.MissingCredential, Err: err}
	}

	transport, err := g.clients.Get(ctx, key)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to construct language model client",
			"error", redact.Error(err))
		return nil, &Error{Kind: KindConfiguration, Message: g.catalog.Messages.MissingCredential, Err: err}
	}

	return transport, nil
}
