package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prachinebangla/seogen/internal/domain"
	"github.com/prachinebangla/seogen/internal/seo"
)

// PageExtractor resolves a product URL into page metadata. Failures wrap
// domain.ErrExtraction.
type PageExtractor interface {
	Extract(ctx context.Context, url string) (domain.PageMetadata, error)
}

// ContentService exposes the four SEO operations.
type ContentService interface {
	// AnalyzeURL extracts a product page and generates metadata for its content
	AnalyzeURL(ctx context.Context, url, companyName string) (*domain.URLAnalysis, error)

	// GenerateContent generates a title, meta description and keywords.
	// A keywordCount of zero selects the default count.
	GenerateContent(ctx context.Context, content, companyName string, keywordCount int) (*domain.GeneratedContent, error)

	// Paraphrase rewrites an existing description
	Paraphrase(ctx context.Context, text, companyName string) (*domain.ParaphraseResult, error)

	// ProductDescription generates a structured product description
	ProductDescription(ctx context.Context, productInfo, companyName string) (*domain.ProductDescriptionResult, error)
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	generators *seo.Suite
	extractor  PageExtractor
	logger     *slog.Logger
}

// NewContentService creates a new ContentService.
// It returns an error if any of the required dependencies are nil.
func NewContentService(generators *seo.Suite, extractor PageExtractor, logger *slog.Logger) (ContentService, error) {
	if generators == nil {
		return nil, errors.New("generators cannot be nil")
	}
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &contentServiceImpl{
		generators: generators,
		extractor:  extractor,
		logger:     logger.With(slog.String("component", "content_service")),
	}, nil
}

// AnalyzeURL implements ContentService.AnalyzeURL
func (s *contentServiceImpl) AnalyzeURL(ctx context.Context, url, companyName string) (*domain.URLAnalysis, error) {
	if err := domain.RequireText("url", url, MessageURLRequired); err != nil {
		return nil, err
	}

	page, err := s.extractor.Extract(ctx, strings.TrimSpace(url))
	if err != nil {
		if !errors.Is(err, domain.ErrExtraction) {
			err = fmt.Errorf("%w: %w", domain.ErrExtraction, err)
		}
		return nil, NewContentServiceError("analyze_url", "failed to extract page", err)
	}

	content := page.Content
	if strings.TrimSpace(content) == "" {
		content = page.Title
	}
	if strings.TrimSpace(content) == "" {
		s.logger.WarnContext(ctx, "page has no usable content", slog.String("url", url))
		return nil, fmt.Errorf("%w: page has no usable content", domain.ErrExtraction)
	}

	generated := s.generate(ctx, content, strings.TrimSpace(companyName), seo.DefaultKeywordCount)
	return &domain.URLAnalysis{
		OriginalTitle:       page.Title,
		OriginalDescription: page.Description,
		OriginalContent:     page.Content,
		GeneratedContent:    generated,
	}, nil
}

// GenerateContent implements ContentService.GenerateContent
func (s *contentServiceImpl) GenerateContent(
	ctx context.Context,
	content, companyName string,
	keywordCount int,
) (*domain.GeneratedContent, error) {
	req, err := domain.NewGenerationRequest("content", MessageContentRequired, content, companyName)
	if err != nil {
		return nil, err
	}

	generated := s.generate(ctx, req.Content, req.CompanyName, keywordCount)
	return &generated, nil
}

// Paraphrase implements ContentService.Paraphrase
func (s *contentServiceImpl) Paraphrase(ctx context.Context, text, companyName string) (*domain.ParaphraseResult, error) {
	req, err := domain.NewGenerationRequest("text", MessageTextRequired, text, companyName)
	if err != nil {
		return nil, err
	}

	return &domain.ParaphraseResult{
		ParaphrasedText: s.generators.Descriptions.Paraphrase(ctx, req.Content, req.CompanyName),
	}, nil
}

// ProductDescription implements ContentService.ProductDescription
func (s *contentServiceImpl) ProductDescription(
	ctx context.Context,
	productInfo, companyName string,
) (*domain.ProductDescriptionResult, error) {
	req, err := domain.NewGenerationRequest("product_info", MessageProductInfoRequired, productInfo, companyName)
	if err != nil {
		return nil, err
	}

	return &domain.ProductDescriptionResult{
		ProductDescription: s.generators.Products.Generate(ctx, req.Content, req.CompanyName),
	}, nil
}

func (s *contentServiceImpl) generate(ctx context.Context, content, companyName string, keywordCount int) domain.GeneratedContent {
	s.logger.DebugContext(ctx, "generating content",
		slog.Int("content_length", len(content)),
		slog.Bool("custom_company", companyName != ""))

	return domain.GeneratedContent{
		GeneratedTitle:       s.generators.Titles.Generate(ctx, content, companyName),
		GeneratedDescription: s.generators.Descriptions.MetaDescription(ctx, content, companyName),
		GeneratedKeywords:    s.generators.Keywords.Generate(ctx, content, keywordCount, companyName),
	}
}
