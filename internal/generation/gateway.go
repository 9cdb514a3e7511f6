package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxRetries is the number of attempts used when the configured value
// is not positive.
const DefaultMaxRetries = 3

const safePromptTemplate = `Generate safe and appropriate content for:

%s

Requirements:
- Keep content professional and factual
- Avoid any potentially harmful or dangerous content
- Focus on product information and benefits`

// SafePrompt wraps prompt in the reworded instructions sent after the backend
// returns no usable text.
func SafePrompt(prompt string) string {
	return fmt.Sprintf(safePromptTemplate, prompt)
}

// GatewayConfig controls the gateway retry policy.
type GatewayConfig struct {
	// MaxRetries is the number of attempts. Each attempt may issue two
	// backend calls: the prompt itself and, if the reply was unusable, its
	// safe rewording.
	MaxRetries int

	// AttemptTimeout bounds every single backend call. Zero disables it.
	AttemptTimeout time.Duration

	// Options are passed unchanged to every backend call.
	Options Options
}

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithRateLimiter makes every backend call wait for a token from limiter.
func WithRateLimiter(limiter *rate.Limiter) GatewayOption {
	return func(g *Gateway) {
		g.limiter = limiter
	}
}

// WithRecorder reports attempts and reprompts to recorder.
func WithRecorder(recorder Recorder) GatewayOption {
	return func(g *Gateway) {
		if recorder != nil {
			g.recorder = recorder
		}
	}
}

// Gateway wraps a Backend with validation, retry and the safety reprompt.
// It holds no per-request state and is safe for concurrent use.
type Gateway struct {
	backend  Backend
	config   GatewayConfig
	logger   *slog.Logger
	limiter  *rate.Limiter
	recorder Recorder
}

// NewGateway creates a Gateway around backend.
func NewGateway(backend Backend, config GatewayConfig, logger *slog.Logger, opts ...GatewayOption) (*Gateway, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if config.MaxRetries <= 0 {
		logger.Warn("invalid max retries value, using default",
			"configured", config.MaxRetries,
			"default", DefaultMaxRetries)
		config.MaxRetries = DefaultMaxRetries
	}
	if config.AttemptTimeout < 0 {
		config.AttemptTimeout = 0
	}

	g := &Gateway{
		backend:  backend,
		config:   config,
		logger:   logger,
		recorder: NopRecorder(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Recorder returns the recorder the gateway reports to, so generators built
// on the gateway can report their fallbacks to the same sink.
func (g *Gateway) Recorder() Recorder {
	return g.recorder
}

// Generate sends prompt to the backend and returns the trimmed reply.
//
// Each attempt calls the backend with prompt; an empty reply is followed
// immediately by one call with SafePrompt(prompt). Backend errors end the
// attempt and are discarded unless it was the last one. When every attempt
// is spent, or ctx is done, the returned error wraps ErrGenerationFailed.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	maxAttempts := g.config.MaxRetries

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
		last := attempt == maxAttempts

		text, err := g.call(ctx, prompt)
		if err == nil && text != "" {
			g.logger.DebugContext(ctx, "generation succeeded",
				"attempt", attempt,
				"response_length", len(text))
			return text, nil
		}
		if err != nil {
			if last {
				return "", g.exhausted(ctx, attempt, err)
			}
			g.logger.WarnContext(ctx, "generation attempt failed, retrying",
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"error", err)
			continue
		}

		g.logger.WarnContext(ctx, "empty generation response, retrying with safe prompt",
			"attempt", attempt)
		g.recorder.Reprompt()

		text, err = g.call(ctx, SafePrompt(prompt))
		if err == nil && text != "" {
			g.logger.DebugContext(ctx, "safe prompt generation succeeded",
				"attempt", attempt,
				"response_length", len(text))
			return text, nil
		}
		if err != nil && last {
			return "", g.exhausted(ctx, attempt, err)
		}
		g.logger.WarnContext(ctx, "safe prompt produced no usable response",
			"attempt", attempt,
			"max_attempts", maxAttempts,
			"error", err)
	}

	return "", g.exhausted(ctx, maxAttempts, ErrEmptyResponse)
}

// call performs one backend call under the rate limit and attempt timeout.
func (g *Gateway) call(ctx context.Context, prompt string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			g.recorder.Attempt(OutcomeError)
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	callCtx := ctx
	if g.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.config.AttemptTimeout)
		defer cancel()
	}

	text, err := g.backend.Generate(callCtx, prompt, g.config.Options)
	if err != nil {
		g.recorder.Attempt(OutcomeError)
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		g.recorder.Attempt(OutcomeInvalid)
		return "", nil
	}
	g.recorder.Attempt(OutcomeSuccess)
	return text, nil
}

func (g *Gateway) exhausted(ctx context.Context, attempts int, cause error) error {
	g.logger.ErrorContext(ctx, "generation failed after all attempts",
		"attempts", attempts,
		"error", cause)
	return fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, attempts, cause)
}
