package mocks

import (
	"context"
	"sync"

	"github.com/prachinebangla/seogen/internal/generation"
)

// Reply is one scripted backend response.
type Reply struct {
	Text string
	Err  error
}

// MockBackend implements generation.Backend for testing.
//
// Calls consume Replies in order. When the script is exhausted the last reply
// is repeated; with no script the zero Reply (empty text) is returned.
type MockBackend struct {
	// GenerateFn overrides the scripted replies when set
	GenerateFn func(ctx context.Context, prompt string, opts generation.Options) (string, error)

	// Replies is the scripted sequence of responses
	Replies []Reply

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Options contains all options passed to Generate calls
		Options []generation.Options
	}
}

// Generate implements the generation.Backend interface
func (m *MockBackend) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	m.GenerateCalls.mu.Lock()
	call := m.GenerateCalls.Count
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Options = append(m.GenerateCalls.Options, opts)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, opts)
	}

	if len(m.Replies) == 0 {
		return "", nil
	}
	if call >= len(m.Replies) {
		call = len(m.Replies) - 1
	}
	r := m.Replies[call]
	return r.Text, r.Err
}

// CallCount returns the number of Generate calls so far.
func (m *MockBackend) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// Prompt returns the prompt of the i-th call, or "" if there was none.
func (m *MockBackend) Prompt(i int) string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if i < 0 || i >= len(m.GenerateCalls.Prompts) {
		return ""
	}
	return m.GenerateCalls.Prompts[i]
}

// NewMockBackendWithText creates a MockBackend that always replies with text
func NewMockBackendWithText(text string) *MockBackend {
	return &MockBackend{Replies: []Reply{{Text: text}}}
}

// NewMockBackendWithError creates a MockBackend that always fails with err
func NewMockBackendWithError(err error) *MockBackend {
	return &MockBackend{Replies: []Reply{{Err: err}}}
}

// NewMockBackendWithReplies creates a MockBackend that plays replies in order
func NewMockBackendWithReplies(replies ...Reply) *MockBackend {
	return &MockBackend{Replies: replies}
}

// Reset resets the call tracking state
func (m *MockBackend) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Options = nil
}
