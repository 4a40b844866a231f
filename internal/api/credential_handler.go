package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/phrazzld/ideaspark-api/internal/api/shared"
	"github.com/phrazzld/ideaspark-api/internal/credential"
	"github.com/phrazzld/ideaspark-api/internal/generation"
	"github.com/phrazzld/ideaspark-api/internal/platform/logger"
)

// CredentialStore keeps a credential supplied at runtime.
type CredentialStore interface {
	credential.Source
	credential.Requester
	Clear()
}

// Verifier checks that the generator can build a client with the credential
// it currently resolves.
type Verifier interface {
	Verify(ctx context.Context) error
}

// CredentialHandler reports and accepts the language model credential.
type CredentialHandler struct {
	store    CredentialStore
	verifier Verifier
	provider string
	logger   *slog.Logger

	// mu serializes updates so a rollback restores the key it replaced.
	mu sync.Mutex
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(
	store CredentialStore,
	verifier Verifier,
	provider string,
	log *slog.Logger,
) *CredentialHandler {
	if log == nil {
		log = slog.Default()
	}

	return &CredentialHandler{
		store:    store,
		verifier: verifier,
		provider: provider,
		logger:   log.With(slog.String("component", "credential_handler")),
	}
}

// GetStatus handles GET /api/credential requests.
func (h *CredentialHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CredentialStatusResponse{
		Configured: h.verifier.Verify(r.Context()) == nil,
		Provider:   h.provider,
	})
}

// SetCredential handles PUT /api/credential requests. The new key is stored,
// then the full credential chain is re-resolved and a client is built before
// the key is reported as configured. On failure the previous key is restored.
func (h *CredentialHandler) SetCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CredentialRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid api_key: required field", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := r.Context()
	previous, err := h.store.Resolve(ctx)
	if err != nil && !errors.Is(err, credential.ErrMissing) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	if err := h.store.RequestCredential(ctx, req.APIKey); err != nil {
		h.reject(w, r, err)
		return
	}

	if err := h.verifier.Verify(ctx); err != nil {
		h.rollback(ctx, previous)
		log.Warn("supplied credential failed verification, previous key restored")
		h.reject(w, r, err)
		return
	}

	log.Info("language model credential updated", slog.String("provider", h.provider))
	shared.RespondWithJSON(w, r, http.StatusOK, CredentialStatusResponse{
		Configured: true,
		Provider:   h.provider,
	})
}

func (h *CredentialHandler) rollback(ctx context.Context, previous string) {
	if previous == "" {
		h.store.Clear()
		return
	}
	if err := h.store.RequestCredential(ctx, previous); err != nil {
		h.store.Clear()
	}
}

func (h *CredentialHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	message := generation.MessageOf(err)
	if message == "" {
		message = "The supplied credential could not be used"
	}

	shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, message, err,
		shared.WithKind(string(generation.KindConfiguration)),
		shared.WithAction(ActionConfigureCredential),
		shared.WithElevatedLogLevel())
}
