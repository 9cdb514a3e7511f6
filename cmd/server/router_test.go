package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prachinebangla/seogen/internal/api/shared"
	"github.com/prachinebangla/seogen/internal/app"
	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/mocks"
	"github.com/prachinebangla/seogen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                  5000,
			LogLevel:              "debug",
			RequestTimeoutSeconds: 30,
			CORSAllowedOrigins:    []string{"https://shop.example.com"},
		},
		LLM: config.LLMConfig{
			Provider:        app.ProviderGemini,
			GeminiAPIKey:    "test-key",
			ModelName:       "gemini-1.5-flash",
			Temperature:     0.5,
			TopP:            0.94,
			MaxOutputTokens: 1024,
			MaxRetries:      2,
		},
		Content: config.ContentConfig{
			DefaultCompanyName:   "Prachine Bangla Online",
			DefaultPharmacyName:  "Prachine Bangla Online Pharmacy",
			DefaultShopName:      "Prachine Bangla Online Shop",
			MaxTitleLength:       80,
			MaxDescriptionLength: 160,
			MedicineKeywords:     []string{"medicine", "tablet", "capsule", "syrup", "injection"},
		},
		Scraper: config.ScraperConfig{TimeoutSeconds: 5, MaxRetries: 1, UserAgent: "seogen-test"},
	}
}

func newTestApplication(t *testing.T, backend *mocks.MockBackend) *application {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	a, err := newApplication(context.Background(), testConfig(), log, app.WithBackend(backend))
	require.NoError(t, err)
	return a
}

func TestHealth(t *testing.T) {
	router := newTestApplication(t, mocks.NewMockBackendWithText("unused")).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
}

func TestGenerateContentEndToEnd(t *testing.T) {
	backend := mocks.NewMockBackendWithText("Fexomin 120mg Tablet")
	router := newTestApplication(t, backend).setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-content",
		strings.NewReader(`{"content": "Fexomin 120mg Tablet is an antihistamine", "company_name": "Health Hub"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		GeneratedTitle       string   `json:"generated_title"`
		GeneratedDescription string   `json:"generated_description"`
		GeneratedKeywords    []string `json:"generated_keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.GeneratedTitle, "Fexomin 120mg Tablet"), body.GeneratedTitle)
	assert.Contains(t, body.GeneratedTitle, "Health Hub")
	assert.NotEmpty(t, body.GeneratedDescription)
	assert.Contains(t, body.GeneratedKeywords, "Health Hub medicine")
}

func TestValidationErrorThroughRouter(t *testing.T) {
	backend := mocks.NewMockBackendWithText("unused")
	router := newTestApplication(t, backend).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/paraphrase", strings.NewReader(`{"text": " "}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"error": "Text is required", "trace_id": %q}`, w.Header().Get(shared.TraceIDHeader)),
		w.Body.String())
	assert.Zero(t, backend.CallCount())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestApplication(t, mocks.NewMockBackendWithText("unused")).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze-url", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/analyze-url", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestApplication(t, mocks.NewMockBackendWithText("unused")).setupRouter()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	router.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/api/generate-content", strings.NewReader(`{}`)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `seogen_http_requests_total{route="/health",status="200"} 1`)
	assert.Contains(t, body, `seogen_http_requests_total{route="/api/generate-content",status="400"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	a := newTestApplication(t, mocks.NewMockBackendWithText("unused"))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.serve(ctx, listener, a.setupRouter())
	}()

	url := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test probe
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "OK"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
