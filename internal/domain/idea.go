package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Idea is a single business-idea suggestion returned by the language model.
// Its only identity is its position in the slice the generator returns.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewIdea creates an Idea from a title and description.
func NewIdea(title, description string) Idea {
	return Idea{Title: title, Description: description}
}

// IdeaEnvelope is the structured payload the language model is instructed to
// emit. Ideas keeps the order chosen by the model.
type IdeaEnvelope struct {
	Ideas []Idea `json:"ideas"`
}

// IdeaRequest carries the raw interest text typed by the user. It is not
// trimmed or validated here; callers decide what input they accept.
type IdeaRequest struct {
	Interests string `json:"interests"`
}

// Validate checks the interests for callers that require non-blank text of at
// most maxLen characters. A maxLen of zero or less disables the length check.
func (r IdeaRequest) Validate(maxLen int) error {
	if strings.TrimSpace(r.Interests) == "" {
		return NewValidationError("interests", "cannot be empty", ErrEmptyContent)
	}
	if maxLen > 0 && utf8.RuneCountInString(r.Interests) > maxLen {
		return NewValidationError("interests",
			fmt.Sprintf("must be at most %d characters", maxLen), ErrContentTooLong)
	}
	return nil
}
