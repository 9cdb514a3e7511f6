package domain

import "strings"

// GenerationRequest is the immutable input of a generator call.
type GenerationRequest struct {
	Content     string
	CompanyName string
}

// NewGenerationRequest trims its inputs and rejects blank content with a
// ValidationError for field carrying message.
func NewGenerationRequest(field, message, content, companyName string) (GenerationRequest, error) {
	if err := RequireText(field, content, message); err != nil {
		return GenerationRequest{}, err
	}
	return GenerationRequest{
		Content:     strings.TrimSpace(content),
		CompanyName: strings.TrimSpace(companyName),
	}, nil
}

// RequireText returns a ValidationError when value is blank after trimming.
func RequireText(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, message)
	}
	return nil
}

// PageMetadata is what the URL extractor recovers from a product page.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// StructuredDescription is the four-part product description. All four
// fields are always present; Synthesized marks placeholder text that was
// invented because the backend reply only carried features or benefits.
type StructuredDescription struct {
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	Synthesized      bool     `json:"synthesized,omitempty"`
}

// Normalized returns d with nil sequences replaced by empty ones, so the
// JSON form always carries arrays.
func (d StructuredDescription) Normalized() StructuredDescription {
	if d.Features == nil {
		d.Features = []string{}
	}
	if d.Benefits == nil {
		d.Benefits = []string{}
	}
	return d
}

// GeneratedContent is the result of generating metadata for raw content.
type GeneratedContent struct {
	GeneratedTitle       string   `json:"generated_title"`
	GeneratedDescription string   `json:"generated_description"`
	GeneratedKeywords    []string `json:"generated_keywords"`
}

// URLAnalysis is GeneratedContent plus the metadata found on the page.
type URLAnalysis struct {
	OriginalTitle       string `json:"original_title"`
	OriginalDescription string `json:"original_description"`
	OriginalContent     string `json:"original_content"`
	GeneratedContent
}

// ParaphraseResult is the result of paraphrasing a description.
type ParaphraseResult struct {
	ParaphrasedText string `json:"paraphrased_text"`
}

// ProductDescriptionResult wraps a structured description.
type ProductDescriptionResult struct {
	ProductDescription StructuredDescription `json:"product_description"`
}
