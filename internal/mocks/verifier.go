package mocks

import (
	"context"
	"sync/atomic"
)

// MockVerifier implements api.Verifier for testing.
type MockVerifier struct {
	VerifyFn func(ctx context.Context) error
	Err      error

	calls int32
}

// Verify returns VerifyFn's result, or Err.
func (m *MockVerifier) Verify(ctx context.Context) error {
	atomic.AddInt32(&m.calls, 1)
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx)
	}
	return m.Err
}

// CallCount returns how many times Verify was called.
func (m *MockVerifier) CallCount() int {
	return int(atomic.LoadInt32(&m.calls))
}
