package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/ideaspark-api/internal/generation"
)

// MockTransport implements generation.Transport for testing. It records every
// request and answers with Response and Err unless GenerateFn is set.
type MockTransport struct {
	GenerateFn func(ctx context.Context, req generation.Request) (string, error)

	Response string
	Err      error

	mu       sync.Mutex
	requests []generation.Request
}

var _ generation.Transport = (*MockTransport)(nil)

// Generate implements the generation.Transport interface
func (m *MockTransport) Generate(ctx context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Response, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockTransport) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of the recorded requests.
func (m *MockTransport) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.Request(nil), m.requests...)
}

// Factory returns a TransportFactory that always hands out m.
func (m *MockTransport) Factory() generation.TransportFactory {
	return func(context.Context, string) (generation.Transport, error) {
		return m, nil
	}
}
