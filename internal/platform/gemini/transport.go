package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/phrazzld/ideaspark-api/internal/generation"
	"google.golang.org/genai"
)

// Transport implements generation.Transport using the Gemini API.
type Transport struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	maxOutputTokens int32
}

var _ generation.Transport = (*Transport)(nil)

// NewTransport creates a Gemini transport authorised with apiKey. Building
// the client performs no network call.
//
// Parameters:
//   - ctx: Context for client construction
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration (model name, optional base URL, token limit)
//   - apiKey: The resolved credential
func NewTransport(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, apiKey string) (*Transport, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.InfoContext(ctx, "Gemini client created", "model", cfg.ModelName)

	return &Transport{
		logger:          logger,
		client:          client,
		model:           cfg.ModelName,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

// NewFactory returns a generation.TransportFactory building Gemini transports.
func NewFactory(logger *slog.Logger, cfg config.LLMConfig) generation.TransportFactory {
	return func(ctx context.Context, apiKey string) (generation.Transport, error) {
		return NewTransport(ctx, logger, cfg, apiKey)
	}
}

// Generate sends req to the model and returns the concatenated text of the
// first candidate.
func (t *Transport) Generate(ctx context.Context, req generation.Request) (string, error) {
	t.logger.DebugContext(ctx, "Making Gemini API call",
		"model", t.model,
		"prompt_length", len(req.UserMessage))

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(req.UserMessage), t.contentConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	return responseText(resp)
}

// contentConfig builds the generation config: system instruction, JSON
// response type and the response schema.
func (t *Transport) contentConfig(req generation.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.Schema),
	}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}

	if t.maxOutputTokens > 0 {
		cfg.MaxOutputTokens = t.maxOutputTokens
	}

	return cfg
}

// responseText extracts the text of the first candidate, skipping thought parts.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", ErrContentBlocked
	}

	if candidate.Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
