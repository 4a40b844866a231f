package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/ideaspark-api/internal/api/shared"
	"github.com/phrazzld/ideaspark-api/internal/domain"
	"github.com/phrazzld/ideaspark-api/internal/generation"
	"github.com/phrazzld/ideaspark-api/internal/platform/logger"
)

// IdeaHandlerConfig holds the caller-side limits applied to generation.
type IdeaHandlerConfig struct {
	// Timeout bounds a single generation call. Zero means no deadline.
	Timeout time.Duration

	// MaxInterestLength caps the interest text in characters. Zero disables it.
	MaxInterestLength int

	// Examples are sample interest prompts offered to clients.
	Examples []string
}

// IdeaHandler handles idea generation requests.
type IdeaHandler struct {
	generator generation.Generator
	logger    *slog.Logger
	cfg       IdeaHandlerConfig
}

// NewIdeaHandler creates a new IdeaHandler. A nil logger falls back to the
// default logger.
func NewIdeaHandler(generator generation.Generator, log *slog.Logger, cfg IdeaHandlerConfig) *IdeaHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Examples == nil {
		cfg.Examples = []string{}
	}

	return &IdeaHandler{
		generator: generator,
		logger:    log.With(slog.String("component", "idea_handler")),
		cfg:       cfg,
	}
}

// GenerateIdeas handles POST /api/ideas requests.
func (h *IdeaHandler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateIdeasRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := req.Validate(h.cfg.MaxInterestLength); err != nil {
		respondWithError(w, r, err)
		return
	}

	ctx := r.Context()
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	ideas, err := h.generator.GenerateIdeas(ctx, req.Interests)
	if err != nil {
		log.Warn("idea generation failed",
			slog.String("error_kind", string(generation.KindOf(err))))
		respondWithError(w, r, err)
		return
	}

	if ideas == nil {
		ideas = []domain.Idea{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IdeasResponse{Ideas: ideas})
}

// ListExamples handles GET /api/examples requests.
func (h *IdeaHandler) ListExamples(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ExamplesResponse{Examples: h.cfg.Examples})
}
