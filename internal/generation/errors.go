package generation

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind string

// Failure kinds surfaced to callers.
const (
	// KindConfiguration means the credential is missing or unusable; callers
	// should offer a way to set up access rather than a retry.
	KindConfiguration Kind = "configuration"

	// KindService means the call to the remote model failed (network, auth,
	// quota, or a service-side error).
	KindService Kind = "service"

	// KindFormat means the model answered but not in the agreed shape.
	KindFormat Kind = "format"
)

// Sentinels matched by errors.Is against an *Error of the corresponding kind.
var (
	ErrConfiguration = errors.New("idea generator is not configured")
	ErrService       = errors.New("language model service call failed")
	ErrFormat        = errors.New("language model returned ideas in an unexpected format")
)

// Payload errors wrapped inside format errors.
var (
	// ErrMalformedPayload is returned when the payload is not valid JSON.
	ErrMalformedPayload = errors.New("payload is not valid JSON")

	// ErrUnexpectedShape is returned when valid JSON does not match the idea envelope.
	ErrUnexpectedShape = errors.New("payload does not match the idea envelope")
)

// Error is a classified generation failure. Message is safe to show to end
// users; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
	}
	return e.sentinel().Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindConfiguration:
		return ErrConfiguration
	case KindService:
		return ErrService
	default:
		return ErrFormat
	}
}

// KindOf returns the kind of a classified error, or "" for anything else.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// MessageOf returns the user-facing message of a classified error, or "" for
// anything else.
func MessageOf(err error) string {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Message
	}
	return ""
}
