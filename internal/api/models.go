package api

import "github.com/phrazzld/ideaspark-api/internal/domain"

// GenerateIdeasRequest is the body of POST /api/ideas.
type GenerateIdeasRequest = domain.IdeaRequest

// IdeasResponse is the body of a successful POST /api/ideas.
type IdeasResponse = domain.IdeaEnvelope

// ExamplesResponse lists example interest prompts.
type ExamplesResponse struct {
	Examples []string `json:"examples"`
}

// CredentialRequest is the body of PUT /api/credential.
type CredentialRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// CredentialStatusResponse reports whether the generator can reach its
// language model.
type CredentialStatusResponse struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider"`
}
