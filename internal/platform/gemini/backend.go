package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/generation"
	"google.golang.org/genai"
)

// safetyCategories are blocked at medium probability and above when
// generation.Options.BlockUnsafeContent is set.
var safetyCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// Backend implements generation.Backend using the Gemini API.
type Backend struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewBackend creates a Gemini backend from the LLM configuration.
//
// It returns an error wrapping generation.ErrInvalidConfig when the API key or
// model name is missing or the client cannot be created.
func NewBackend(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Backend{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Generate sends prompt to the configured model and returns the text of the
// first candidate.
func (b *Backend) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	b.logger.DebugContext(ctx, "calling Gemini API",
		"model", b.model,
		"prompt_length", len(prompt))

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), contentConfig(opts))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text, finish := responseText(resp)
	if text == "" {
		b.logger.WarnContext(ctx, "Gemini returned no text",
			"model", b.model,
			"finish_reason", finish)
	}
	return text, nil
}

// contentConfig maps generation options onto a Gemini request configuration.
func contentConfig(opts generation.Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		TopP:            genai.Ptr(opts.TopP),
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if opts.BlockUnsafeContent {
		for _, category := range safetyCategories {
			cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
				Category:  category,
				Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
			})
		}
	}
	return cfg
}

// responseText concatenates the text parts of the first candidate. It
// returns "" for a missing candidate or one stopped by the safety filters,
// together with the finish reason for logging.
func responseText(resp *genai.GenerateContentResponse) (string, genai.FinishReason) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", ""
	}
	if candidate.FinishReason == genai.FinishReasonSafety || candidate.Content == nil {
		return "", candidate.FinishReason
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), candidate.FinishReason
}
