package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/prachinebangla/seogen/internal/api"
	apiMiddleware "github.com/prachinebangla/seogen/internal/api/middleware"
	"github.com/prachinebangla/seogen/internal/api/shared"
)

// corsMaxAgeSeconds is how long browsers may cache a preflight response.
const corsMaxAgeSeconds = 300

// setupRouter creates and configures the application router with all routes
// and middleware.
func (a *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(a.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(a.components.Metrics))

	contentHandler := api.NewContentHandler(a.components.Service, a.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.config.Server.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{shared.TraceIDHeader},
			MaxAge:         corsMaxAgeSeconds,
		}))
		if seconds := a.config.Server.RequestTimeoutSeconds; seconds > 0 {
			r.Use(middleware.Timeout(time.Duration(seconds) * time.Second))
		}

		r.Post("/analyze-url", contentHandler.AnalyzeURL)
		r.Post("/generate-content", contentHandler.GenerateContent)
		r.Post("/paraphrase", contentHandler.Paraphrase)
		r.Post("/product-description", contentHandler.ProductDescription)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			a.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", a.components.Metrics.Handler())

	return r
}
