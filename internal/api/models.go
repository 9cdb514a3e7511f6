package api

import (
	"strings"

	"github.com/prachinebangla/seogen/internal/service"
)

// AnalyzeURLRequest is the body of POST /api/analyze-url.
type AnalyzeURLRequest struct {
	URL         string `json:"url" validate:"required"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// GenerateContentRequest is the body of POST /api/generate-content.
// KeywordCount is optional; zero selects the default count.
type GenerateContentRequest struct {
	Content      string `json:"content" validate:"required"`
	CompanyName  string `json:"company_name" validate:"max=200"`
	KeywordCount int    `json:"keyword_count" validate:"gte=0,lte=100"`
}

// ParaphraseRequest is the body of POST /api/paraphrase.
type ParaphraseRequest struct {
	Text        string `json:"text" validate:"required"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// ProductDescriptionRequest is the body of POST /api/product-description.
type ProductDescriptionRequest struct {
	ProductInfo string `json:"product_info" validate:"required"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// contentRequest is implemented by every request body. normalize trims the
// fields in place so that blank values fail the required check, and
// requiredMessage is the message returned when the main field is missing.
type contentRequest interface {
	normalize()
	requiredMessage() string
}

func (r *AnalyzeURLRequest) normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
}

func (r *AnalyzeURLRequest) requiredMessage() string { return service.MessageURLRequired }

func (r *GenerateContentRequest) normalize() {
	r.Content = strings.TrimSpace(r.Content)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
}

func (r *GenerateContentRequest) requiredMessage() string { return service.MessageContentRequired }

func (r *ParaphraseRequest) normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
}

func (r *ParaphraseRequest) requiredMessage() string { return service.MessageTextRequired }

func (r *ProductDescriptionRequest) normalize() {
	r.ProductInfo = strings.TrimSpace(r.ProductInfo)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
}

func (r *ProductDescriptionRequest) requiredMessage() string {
	return service.MessageProductInfoRequired
}
