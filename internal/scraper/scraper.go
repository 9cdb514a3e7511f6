package scraper

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/domain"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps how much of a page is read.
const maxBodyBytes = 10 << 20

// Config controls fetching.
type Config struct {
	Timeout                  time.Duration
	MaxRetries               int
	BackoffInitial           time.Duration
	UserAgent                string
	AllowInsecureTLSFallback bool
}

// ConfigFrom converts the scraper section of the application config.
func ConfigFrom(cfg config.ScraperConfig) Config {
	return Config{
		Timeout:                  time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries:               cfg.MaxRetries,
		BackoffInitial:           time.Duration(cfg.BackoffInitialMillis) * time.Millisecond,
		UserAgent:                cfg.UserAgent,
		AllowInsecureTLSFallback: cfg.AllowInsecureTLSFallback,
	}
}

// Option customizes a Scraper.
type Option func(*Scraper)

// WithHTTPClient replaces the verifying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		if client != nil {
			s.client = client
		}
	}
}

// Scraper extracts page metadata over HTTP. It is safe for concurrent use.
type Scraper struct {
	client   *http.Client
	insecure *http.Client
	config   Config
	logger   *slog.Logger
}

// New creates a Scraper.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Scraper, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BackoffInitial <= 0 {
		cfg.BackoffInitial = 500 * time.Millisecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	s := &Scraper{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.insecure = insecureClient(s.client)
	return s, nil
}

// insecureClient copies client with certificate verification disabled.
func insecureClient(client *http.Client) *http.Client {
	transport, ok := client.Transport.(*http.Transport)
	if !ok || transport == nil {
		transport = http.DefaultTransport.(*http.Transport)
	}
	transport = transport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // opt-in fallback for misconfigured shops

	insecure := *client
	insecure.Transport = transport
	return &insecure
}

// NormalizeURL trims rawURL and prefixes https:// when it has no scheme.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + strings.TrimLeft(rawURL, ":/")
}

// Extract fetches rawURL and returns its metadata. Any failure wraps
// domain.ErrExtraction.
func (s *Scraper) Extract(ctx context.Context, rawURL string) (domain.PageMetadata, error) {
	target := NormalizeURL(rawURL)
	log := s.logger.With("url", target)
	log.InfoContext(ctx, "fetching page")

	body, err := s.fetchWithRetry(ctx, target)
	if err != nil {
		log.ErrorContext(ctx, "failed to fetch page", "error", err)
		return domain.PageMetadata{}, fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	meta, err := Parse(body, target)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse page", "error", err)
		return domain.PageMetadata{}, fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	log.DebugContext(ctx, "page extracted",
		"title_length", len(meta.Title),
		"content_length", len(meta.Content))
	return meta, nil
}

func (s *Scraper) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.BackoffInitial
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.config.MaxRetries-1)), ctx)
}

func (s *Scraper) fetchWithRetry(ctx context.Context, target string) ([]byte, error) {
	var body []byte
	attempt := 0

	operation := func() error {
		attempt++
		var err error
		body, err = s.fetch(ctx, s.client, target)
		if err == nil {
			return nil
		}
		if isCertificateError(err) && s.config.AllowInsecureTLSFallback {
			s.logger.WarnContext(ctx, "certificate verification failed, retrying without verification",
				"url", target,
				"attempt", attempt)
			body, err = s.fetch(ctx, s.insecure, target)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		s.logger.WarnContext(ctx, "page fetch failed, retrying",
			"url", target,
			"attempt", attempt,
			"max_attempts", s.config.MaxRetries,
			"wait", wait,
			"error", err)
	}

	if err := backoff.RetryNotify(operation, s.newBackOff(ctx), notify); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *Scraper) fetch(ctx context.Context, client *http.Client, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid url: %w", err))
	}
	s.setHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// setHeaders sends a browser-like header set. Accept-Encoding is left to the
// transport so compressed bodies are decoded transparently.
func (s *Scraper) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
}

func isCertificateError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}
