// Package openai provides a generation.Transport for OpenAI chat completions
// and OpenAI-compatible endpoints (set llm.base_url). Structured output uses a
// strict json_schema response format.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/phrazzld/ideaspark-api/internal/generation"
)

// schemaName identifies the response format in the request.
const schemaName = "idea_envelope"

var (
	// ErrEmptyAPIKey is returned when a transport is built without an API key.
	ErrEmptyAPIKey = errors.New("openai API key cannot be empty")

	// ErrNoChoices is returned when the API answers without any choice.
	ErrNoChoices = errors.New("openai returned no choices")

	// ErrRefused is returned when the model refuses to answer.
	ErrRefused = errors.New("openai model refused the request")
)

// Transport implements generation.Transport with the OpenAI SDK.
type Transport struct {
	logger    *slog.Logger
	client    openaisdk.Client
	model     string
	maxTokens int64
}

var _ generation.Transport = (*Transport)(nil)

// NewTransport creates an OpenAI transport. SDK retries are disabled.
func NewTransport(logger *slog.Logger, cfg config.LLMConfig, apiKey string) (*Transport, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Transport{
		logger:    logger,
		client:    openaisdk.NewClient(opts...),
		model:     cfg.ModelName,
		maxTokens: int64(cfg.MaxOutputTokens),
	}, nil
}

// NewFactory returns a generation.TransportFactory building OpenAI transports.
func NewFactory(logger *slog.Logger, cfg config.LLMConfig) generation.TransportFactory {
	return func(_ context.Context, apiKey string) (generation.Transport, error) {
		return NewTransport(logger, cfg, apiKey)
	}
}

// Generate sends req as a system + user message pair and returns the content
// of the first choice.
func (t *Transport) Generate(ctx context.Context, req generation.Request) (string, error) {
	t.logger.DebugContext(ctx, "Making OpenAI API call",
		"model", t.model,
		"prompt_length", len(req.UserMessage))

	resp, err := t.client.Chat.Completions.New(ctx, t.params(req))
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return "", fmt.Errorf("%w: %s", ErrRefused, msg.Refusal)
	}

	return msg.Content, nil
}

func (t *Transport) params(req generation.Request) openaisdk.ChatCompletionNewParams {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openaisdk.SystemMessage(req.SystemInstruction))
	}
	messages = append(messages, openaisdk.UserMessage(req.UserMessage))

	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(t.model),
		Messages: messages,
		ResponseFormat: openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openaisdk.ResponseFormatJSONSchemaParam{
				JSONSchema: openaisdk.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: req.Schema.JSONSchema(),
					Strict: openaisdk.Bool(true),
				},
			},
		},
	}
	if t.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(t.maxTokens)
	}
	return params
}
