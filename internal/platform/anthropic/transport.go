// Package anthropic provides a generation.Transport for the Anthropic Messages
// API. Claude has no schema-constrained output mode in this SDK version, so the
// schema travels in the system prompt and code fences are stripped from the
// reply.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/phrazzld/ideaspark-api/internal/generation"
)

const schemaPreamble = "Respond with a single JSON object and nothing else. It must match this JSON Schema:"

var (
	// ErrEmptyAPIKey is returned when a transport is built without an API key.
	ErrEmptyAPIKey = errors.New("anthropic API key cannot be empty")

	// ErrNoText is returned when a reply carries no text block.
	ErrNoText = errors.New("anthropic returned no text content")
)

// Transport implements generation.Transport with the Anthropic SDK.
type Transport struct {
	logger    *slog.Logger
	client    anthropicsdk.Client
	model     string
	maxTokens int64
}

var _ generation.Transport = (*Transport)(nil)

// NewTransport creates an Anthropic transport. SDK retries are disabled.
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
	if cfg.MaxOutputTokens <= 0 {
		return nil, errors.New("max output tokens must be positive")
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
		client:    anthropicsdk.NewClient(opts...),
		model:     cfg.ModelName,
		maxTokens: int64(cfg.MaxOutputTokens),
	}, nil
}

// NewFactory returns a generation.TransportFactory building Anthropic transports.
func NewFactory(logger *slog.Logger, cfg config.LLMConfig) generation.TransportFactory {
	return func(_ context.Context, apiKey string) (generation.Transport, error) {
		return NewTransport(logger, cfg, apiKey)
	}
}

// Generate sends req as a single user turn and returns the concatenated text
// blocks of the reply with any markdown fence removed.
func (t *Transport) Generate(ctx context.Context, req generation.Request) (string, error) {
	system, err := systemPrompt(req)
	if err != nil {
		return "", err
	}

	t.logger.DebugContext(ctx, "Making Anthropic API call",
		"model", t.model,
		"prompt_length", len(req.UserMessage))

	msg, err := t.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(t.model),
		MaxTokens: t.maxTokens,
		System:    []anthropicsdk.TextBlockParam{{Text: system}},
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(req.UserMessage)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var sb strings.Builder
	found := false
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		found = true
		sb.WriteString(block.Text)
	}
	if !found {
		return "", ErrNoText
	}

	return stripFence(sb.String()), nil
}

func systemPrompt(req generation.Request) (string, error) {
	if req.Schema == nil {
		return req.SystemInstruction, nil
	}

	schema, err := json.Marshal(req.Schema.JSONSchema())
	if err != nil {
		return "", fmt.Errorf("failed to encode response schema: %w", err)
	}

	var sb strings.Builder
	if req.SystemInstruction != "" {
		sb.WriteString(req.SystemInstruction)
		sb.WriteString("\n\n")
	}
	sb.WriteString(schemaPreamble)
	sb.WriteString("\n")
	sb.Write(schema)
	return sb.String(), nil
}

// stripFence removes a surrounding ``` or ```json fence.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
