// Package credential resolves the API key used to call the language model.
// Keys come from a chain of sources: a runtime store populated through the
// API, the loaded configuration, and process environment variables. Nothing
// in this package persists a key beyond the process lifetime.
package credential

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrMissing is returned when no source holds a credential.
var ErrMissing = errors.New("credential not configured")

// Source resolves a credential. Implementations return ErrMissing when they
// have nothing to offer.
type Source interface {
	Resolve(ctx context.Context) (string, error)
}

// Requester supplies a credential interactively, for example from an
// operator-facing endpoint. It reports failure when the key is unusable.
type Requester interface {
	RequestCredential(ctx context.Context, key string) error
}

// Static is a fixed credential, typically taken from configuration.
type Static string

// Resolve returns the static value, or ErrMissing when it is blank.
func (s Static) Resolve(context.Context) (string, error) {
	key := strings.TrimSpace(string(s))
	if key == "" {
		return "", ErrMissing
	}
	return key, nil
}

// Env reads the first non-empty variable among Names on every call, so a
// key injected after startup is picked up.
type Env struct {
	Names  []string
	Lookup func(string) (string, bool)
}

// NewEnv creates an Env source reading the given variable names.
func NewEnv(names ...string) *Env {
	return &Env{Names: names, Lookup: os.LookupEnv}
}

// Resolve returns the first non-blank variable value.
func (e *Env) Resolve(context.Context) (string, error) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, name := range e.Names {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", ErrMissing
}

// Chain tries each source in order and returns the first credential found.
type Chain []Source

// Resolve walks the chain. Errors other than ErrMissing stop the walk.
func (c Chain) Resolve(ctx context.Context) (string, error) {
	for _, src := range c {
		key, err := src.Resolve(ctx)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, ErrMissing) {
			return "", err
		}
	}
	return "", ErrMissing
}

// Configured reports whether src currently resolves to a credential.
func Configured(ctx context.Context, src Source) bool {
	_, err := src.Resolve(ctx)
	return err == nil
}
