// Package app assembles the content service and its collaborators from the
// loaded configuration. Both the HTTP server and the CLI are built on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/platform/gemini"
	"github.com/prachinebangla/seogen/internal/platform/metrics"
	"github.com/prachinebangla/seogen/internal/platform/openai"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/prachinebangla/seogen/internal/scraper"
	"github.com/prachinebangla/seogen/internal/seo"
	"github.com/prachinebangla/seogen/internal/service"
)

// Supported values of llm.provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// App holds the wired components.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.PrometheusMetrics
	Gateway *generation.Gateway
	Service service.ContentService
}

// Option customizes Build.
type Option func(*buildOptions)

type buildOptions struct {
	backend    generation.Backend
	httpClient *http.Client
}

// WithBackend replaces the configured provider backend.
func WithBackend(backend generation.Backend) Option {
	return func(o *buildOptions) {
		o.backend = backend
	}
}

// WithScraperClient sets the HTTP client used to fetch product pages.
func WithScraperClient(client *http.Client) Option {
	return func(o *buildOptions) {
		o.httpClient = client
	}
}

// Build creates every component described by cfg.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	backend := options.backend
	if backend == nil {
		var err error
		backend, err = NewBackend(ctx, cfg.LLM, logger.With("component", "llm_backend"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM backend: %w", err)
		}
	}

	promMetrics := metrics.New(logger)

	gatewayOpts := []generation.GatewayOption{generation.WithRecorder(promMetrics)}
	if limiter := NewRateLimiter(cfg.LLM.RequestsPerSecond); limiter != nil {
		gatewayOpts = append(gatewayOpts, generation.WithRateLimiter(limiter))
	}
	gateway, err := generation.NewGateway(backend, GatewayConfig(cfg.LLM),
		logger.With("component", "generation_gateway"), gatewayOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation gateway: %w", err)
	}

	prompts, err := prompt.NewBuilder(cfg.LLM.PromptTemplateDir, cfg.Content.BannedTerms)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	suite, err := seo.New(seo.Dependencies{
		Generator:  gateway,
		Prompts:    prompts,
		Classifier: classifier.New(cfg.Content.MedicineKeywords),
		Settings:   seo.SettingsFromConfig(cfg.Content),
		Logger:     logger.With("component", "seo"),
		Recorder:   gateway.Recorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generators: %w", err)
	}

	var scraperOpts []scraper.Option
	if options.httpClient != nil {
		scraperOpts = append(scraperOpts, scraper.WithHTTPClient(options.httpClient))
	}
	pages, err := scraper.New(scraper.ConfigFrom(cfg.Scraper), logger.With("component", "scraper"), scraperOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scraper: %w", err)
	}

	contentService, err := service.NewContentService(suite, pages, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	logger.Info("application components initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"max_retries", cfg.LLM.MaxRetries,
		"requests_per_second", cfg.LLM.RequestsPerSecond)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: promMetrics,
		Gateway: gateway,
		Service: contentService,
	}, nil
}

// NewBackend creates the backend selected by cfg.Provider.
func NewBackend(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Backend, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		backend, err := gemini.NewBackend(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case ProviderOpenAI:
		backend, err := openai.NewBackend(logger, cfg)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// GatewayConfig derives the retry policy and sampling options from cfg.
func GatewayConfig(cfg config.LLMConfig) generation.GatewayConfig {
	opts := generation.DefaultOptions()
	opts.Temperature = float32(cfg.Temperature)
	opts.TopP = float32(cfg.TopP)
	if cfg.MaxOutputTokens > 0 {
		opts.MaxOutputTokens = int32(min(cfg.MaxOutputTokens, math.MaxInt32))
	}

	return generation.GatewayConfig{
		MaxRetries:     cfg.MaxRetries,
		AttemptTimeout: time.Duration(cfg.AttemptTimeoutSeconds) * time.Second,
		Options:        opts,
	}
}

// NewRateLimiter returns a limiter allowing rps backend calls per second, or
// nil when rps is not positive.
func NewRateLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	burst := int(math.Ceil(rps))
	return rate.NewLimiter(rate.Limit(rps), burst)
}
