// Package main implements the entry point for the IdeaSpark API server, which
// turns a short description of a user's interests into business-idea
// suggestions produced by a generative language model.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/phrazzld/ideaspark-api/internal/platform/logger"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to build application", "error", err)
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		l.Error("Server stopped with error", "error", err)
		log.Fatalf("Server stopped with error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)
	l.Debug("LLM credential configuration",
		"api_key_present", cfg.LLM.APIKey != "",
		"api_key_env", cfg.LLM.APIKeyEnv)

	return cfg, l, nil
}
