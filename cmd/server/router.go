package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ideaspark-api/internal/api"
	apiMiddleware "github.com/phrazzld/ideaspark-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	ideaHandler := api.NewIdeaHandler(app.generator, app.logger, api.IdeaHandlerConfig{
		Timeout:           app.config.Server.GenerateTimeout,
		MaxInterestLength: app.config.Server.MaxInterestLength,
		Examples:          app.catalog.Examples,
	})
	credentialHandler := api.NewCredentialHandler(
		app.credentials,
		app.generator,
		app.config.LLM.Provider,
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ideas", ideaHandler.GenerateIdeas)
		r.Get("/examples", ideaHandler.ListExamples)

		r.Get("/credential", credentialHandler.GetStatus)
		r.Put("/credential", credentialHandler.SetCredential)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
