package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/ideaspark-api/internal/domain"
	"github.com/phrazzld/ideaspark-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateIdeasFn allows test cases to mock the GenerateIdeas behavior
	GenerateIdeasFn func(ctx context.Context, interests string) ([]domain.Idea, error)

	// Default response values
	Ideas []domain.Idea
	Err   error

	mu        sync.Mutex
	interests []string
	deadlines []bool
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateIdeas implements the generation.Generator interface
func (m *MockGenerator) GenerateIdeas(ctx context.Context, interests string) ([]domain.Idea, error) {
	_, hasDeadline := ctx.Deadline()

	m.mu.Lock()
	m.interests = append(m.interests, interests)
	m.deadlines = append(m.deadlines, hasDeadline)
	m.mu.Unlock()

	if m.GenerateIdeasFn != nil {
		return m.GenerateIdeasFn(ctx, interests)
	}
	return m.Ideas, m.Err
}

// NewMockGeneratorWithIdeas creates a MockGenerator that returns ideas.
func NewMockGeneratorWithIdeas(ideas ...domain.Idea) *MockGenerator {
	return &MockGenerator{Ideas: ideas}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// CallCount returns how many times GenerateIdeas was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.interests)
}

// Interests returns the interests passed to each call, in order.
func (m *MockGenerator) Interests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.interests...)
}

// HadDeadline reports whether call i received a context with a deadline.
func (m *MockGenerator) HadDeadline(i int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return i < len(m.deadlines) && m.deadlines[i]
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interests = nil
	m.deadlines = nil
}
