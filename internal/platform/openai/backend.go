// Package openai provides a generation.Backend for any OpenAI-compatible
// chat completion endpoint, using the official openai-go SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/generation"
)

// Backend implements generation.Backend with chat completions. The prompt is
// sent as a single user message. Safety settings have no equivalent in this
// API and are ignored.
type Backend struct {
	logger *slog.Logger
	client sdk.Client
	model  string
}

// NewBackend creates an OpenAI-compatible backend from the LLM configuration.
// Extra request options are appended after the configured ones.
func NewBackend(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	// The gateway owns retries.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Backend{
		logger: logger,
		client: sdk.NewClient(reqOpts...),
		model:  cfg.ModelName,
	}, nil
}

// Generate requests one chat completion and returns the content of the first
// choice, or "" when the endpoint returned no choices.
func (b *Backend) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	b.logger.DebugContext(ctx, "calling chat completion API",
		"model", b.model,
		"prompt_length", len(prompt))

	params := sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(b.model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.UserMessage(prompt),
		},
		Temperature: sdk.Float(float64(opts.Temperature)),
		TopP:        sdk.Float(float64(opts.TopP)),
	}
	if opts.MaxOutputTokens > 0 {
		params.MaxTokens = sdk.Int(int64(opts.MaxOutputTokens))
	}

	resp, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		b.logger.WarnContext(ctx, "chat completion returned no choices", "model", b.model)
		return "", nil
	}
	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		b.logger.WarnContext(ctx, "chat completion returned no text",
			"model", b.model,
			"finish_reason", choice.FinishReason)
	}
	return choice.Message.Content, nil
}
