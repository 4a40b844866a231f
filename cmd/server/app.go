package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/phrazzld/ideaspark-api/internal/credential"
	"github.com/phrazzld/ideaspark-api/internal/generation"
	"github.com/phrazzld/ideaspark-api/internal/generation/prompt"
	"github.com/phrazzld/ideaspark-api/internal/platform/anthropic"
	"github.com/phrazzld/ideaspark-api/internal/platform/gemini"
	"github.com/phrazzld/ideaspark-api/internal/platform/openai"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	catalog     *prompt.Catalog
	credentials *credential.Store
	clients     *generation.ClientCache
	generator   *generation.IdeaGenerator
}

// newApplication wires the prompt catalogue, the credential chain, the
// provider transport and the idea generator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		credentials: credential.NewStore(),
	}

	var err error
	app.catalog, err = prompt.Load(cfg.LLM.PromptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt catalogue: %w", err)
	}
	logger.Info("Prompt catalogue loaded",
		"custom", cfg.LLM.PromptPath != "",
		"idea_count", app.catalog.IdeaCount)

	factory, err := newTransportFactory(logger.With("component", "llm_transport"), cfg.LLM)
	if err != nil {
		return nil, err
	}
	app.clients = generation.NewClientCache(factory)

	// Runtime key first, then the configured value, then the environment.
	chain := credential.Chain{
		app.credentials,
		credential.Static(cfg.LLM.APIKey),
		credential.NewEnv(cfg.LLM.APIKeyEnv...),
	}

	app.generator, err = generation.NewIdeaGenerator(
		logger.With("component", "idea_generator"),
		chain,
		app.clients,
		app.catalog,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize idea generator: %w", err)
	}

	if err := app.generator.Verify(ctx); err != nil {
		logger.Warn("Language model credential not configured yet; requests will fail until one is supplied",
			"provider", cfg.LLM.Provider)
	} else {
		logger.Info("Idea generator initialized", "provider", cfg.LLM.Provider)
	}

	return app, nil
}

// newTransportFactory picks the SDK transport for the configured provider.
func newTransportFactory(logger *slog.Logger, cfg config.LLMConfig) (generation.TransportFactory, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewFactory(logger, cfg), nil
	case "openai":
		return openai.NewFactory(logger, cfg), nil
	case "anthropic":
		return anthropic.NewFactory(logger, cfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
