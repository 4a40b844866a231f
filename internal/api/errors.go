package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ideaspark-api/internal/api/shared"
	"github.com/phrazzld/ideaspark-api/internal/domain"
	"github.com/phrazzld/ideaspark-api/internal/generation"
)

// ActionConfigureCredential tells clients to offer credential setup instead
// of a retry.
const ActionConfigureCredential = "configure_credential"

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrContentTooLong),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrConfiguration):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrService),
		errors.Is(err, generation.ErrFormat):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err. For
// generation errors that is the generator's own user-facing message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	if msg := generation.MessageOf(err); msg != "" {
		return msg
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	return "An unexpected error occurred"
}

// errorOptions tags a response with the error kind and, where one exists,
// the action a client can take.
func errorOptions(err error) []shared.ResponseOption {
	kind := generation.KindOf(err)
	if kind == "" {
		return nil
	}

	opts := []shared.ResponseOption{shared.WithKind(string(kind))}
	if kind == generation.KindConfiguration {
		opts = append(opts, shared.WithAction(ActionConfigureCredential))
	}
	return opts
}

// respondWithError writes the mapped status, safe message and kind for err.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		err,
		errorOptions(err)...)
}
