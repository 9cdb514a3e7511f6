package mocks

import (
	"context"
	"sync"

	"github.com/prachinebangla/seogen/internal/domain"
)

// MockExtractor implements service.PageExtractor for testing.
type MockExtractor struct {
	// ExtractFn overrides Page and Err when set
	ExtractFn func(ctx context.Context, url string) (domain.PageMetadata, error)

	// Page is returned when Err is nil
	Page domain.PageMetadata

	// Err is returned by every call when set
	Err error

	mu   sync.Mutex
	urls []string
}

// Extract implements the service.PageExtractor interface
func (m *MockExtractor) Extract(ctx context.Context, url string) (domain.PageMetadata, error) {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, url)
	}
	if m.Err != nil {
		return domain.PageMetadata{}, m.Err
	}
	return m.Page, nil
}

// URLs returns every URL passed to Extract, in order.
func (m *MockExtractor) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}
