// Package mocks provides centralized fakes for testing.
//
// MockBackend scripts the text-generation backend so gateway and generator
// tests run without network access, MockRecorder counts metric events, and
// MockExtractor stands in for the URL metadata scraper.
//
// Usage:
//
//	backend := mocks.NewMockBackendWithReplies(
//	    mocks.Reply{Err: errors.New("unavailable")},
//	    mocks.Reply{Text: "Fexomin 120mg Tablet|ফেক্সোমিন ১২০ মি.গ্রা. ট্যাবলেট"},
//	)
//	gw, _ := generation.NewGateway(backend, generation.GatewayConfig{MaxRetries: 3}, logger)
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls under a mutex so mocks can be shared by parallel subtests
package mocks
