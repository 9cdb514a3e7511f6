package metrics

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ generation.Recorder = (*PrometheusMetrics)(nil)

func newTestMetrics() *PrometheusMetrics {
	return NewWithRegistry("seogen", prometheus.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecording(t *testing.T) {
	pm := newTestMetrics()

	pm.Attempt(generation.OutcomeSuccess)
	pm.Attempt(generation.OutcomeError)
	pm.Attempt(generation.OutcomeError)
	pm.Reprompt()
	pm.Fallback("title")
	pm.RecordHTTPRequest("/api/paraphrase", http.StatusOK, 120*time.Millisecond)
	pm.RecordHTTPRequest("/api/paraphrase", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(pm.attempts.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.attempts.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.reprompts))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.fallbacks.WithLabelValues("title")))
	assert.Equal(t, 0.0, testutil.ToFloat64(pm.fallbacks.WithLabelValues("keywords")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.httpRequests.WithLabelValues("/api/paraphrase", "400")))
}

func TestHandler(t *testing.T) {
	pm := newTestMetrics()
	pm.Attempt(generation.OutcomeInvalid)
	pm.Fallback("keywords")

	rec := httptest.NewRecorder()
	pm.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `seogen_generation_attempts_total{outcome="invalid"} 1`)
	assert.Contains(t, body, `seogen_generation_fallbacks_total{generator="keywords"} 1`)
	assert.Contains(t, body, "# HELP seogen_generation_reprompts_total")
}

func TestNewRegistersRuntimeCollectors(t *testing.T) {
	pm := New(nil)

	rec := httptest.NewRecorder()
	pm.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
