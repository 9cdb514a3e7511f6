package mocks

import "sync"

// MockRecorder implements generation.Recorder and counts every event.
type MockRecorder struct {
	mu        sync.Mutex
	attempts  map[string]int
	reprompts int
	fallbacks map[string]int
}

// NewMockRecorder creates an empty MockRecorder
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		attempts:  make(map[string]int),
		fallbacks: make(map[string]int),
	}
}

// Attempt implements generation.Recorder
func (m *MockRecorder) Attempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[outcome]++
}

// Reprompt implements generation.Recorder
func (m *MockRecorder) Reprompt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reprompts++
}

// Fallback implements generation.Recorder
func (m *MockRecorder) Fallback(generator string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[generator]++
}

// Attempts returns the number of attempts recorded with outcome.
func (m *MockRecorder) Attempts(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts[outcome]
}

// Reprompts returns the number of reprompts recorded.
func (m *MockRecorder) Reprompts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reprompts
}

// Fallbacks returns the number of fallbacks recorded for generator.
func (m *MockRecorder) Fallbacks(generator string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallbacks[generator]
}
