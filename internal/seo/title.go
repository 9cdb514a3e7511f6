package seo

import (
	"context"
	"strings"

	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/prachinebangla/seogen/internal/textutil"
)

const fallbackPhraseLength = 50

// TitleGenerator builds page titles that end with a company attribution.
type TitleGenerator struct {
	base
}

// NewTitleGenerator creates a TitleGenerator.
func NewTitleGenerator(deps Dependencies) (*TitleGenerator, error) {
	b, err := newBase(deps, GeneratorTitle)
	if err != nil {
		return nil, err
	}
	return &TitleGenerator{base: b}, nil
}

// Generate returns a title for content, at most MaxTitleLength characters
// unless the attribution clause alone is longer.
//
// Medicine titles read "{English} and {Bengali} from {Company}"; other
// products read "{Phrase} available at {Company}". A blank or default
// company name is replaced by the pharmacy or shop default.
func (g *TitleGenerator) Generate(ctx context.Context, content, companyName string) string {
	content = textutil.NormalizeWhitespace(content)
	class := g.classifier.Classify(content)
	company := g.brandName(companyName, class)

	if class.IsMedicine {
		english, bengali := g.medicineNames(ctx, content)
		return formatMedicineTitle(english, bengali, company, g.settings.MaxTitleLength)
	}
	return formatProductTitle(g.productPhrase(ctx, content), company, g.settings.MaxTitleLength)
}

// medicineNames asks for "English Name Strength Type|বাংলা নাম" and splits it.
// On failure the English name is the content itself.
func (g *TitleGenerator) medicineNames(ctx context.Context, content string) (string, string) {
	reply, err := g.generate(ctx, prompt.MedicineTitle, prompt.Data{Content: content})
	if err != nil {
		g.fallback(ctx, err)
		return content, ""
	}

	parts := strings.SplitN(cleanReply(reply), "|", 3)
	english := cleanReply(parts[0])
	bengali := ""
	if len(parts) > 1 {
		bengali = cleanReply(parts[1])
	}
	if english == "" {
		english = content
	}
	return english, bengali
}

// productPhrase asks for a "Product Type Key Features" phrase. On failure it
// uses the start of the content.
func (g *TitleGenerator) productPhrase(ctx context.Context, content string) string {
	reply, err := g.generate(ctx, prompt.ProductTitle, prompt.Data{Content: content})
	if err == nil {
		if phrase := cleanReply(reply); phrase != "" {
			return phrase
		}
		err = generation.ErrEmptyResponse
	}
	g.fallback(ctx, err)
	return textutil.Prefix(content, fallbackPhraseLength) + "..."
}

func formatMedicineTitle(english, bengali, company string, maxLength int) string {
	suffix := " from " + company
	names := english
	if bengali != "" {
		names = english + " and " + bengali
	}
	if textutil.RuneLen(names)+textutil.RuneLen(suffix) <= maxLength {
		return names + suffix
	}

	available := maxLength - textutil.RuneLen(suffix)
	if available <= 0 {
		return company
	}

	truncated := textutil.Prefix(names, available)
	if bengali != "" {
		// Drop the partial Bengali name rather than cutting it.
		if i := strings.LastIndex(truncated, " and "); i > 0 {
			truncated = truncated[:i]
		} else {
			truncated = textutil.WordPrefix(names, available)
		}
	} else {
		truncated = textutil.WordPrefix(names, available)
	}
	return strings.TrimSpace(truncated) + suffix
}

func formatProductTitle(phrase, company string, maxLength int) string {
	suffix := " available at " + company
	if textutil.RuneLen(phrase)+textutil.RuneLen(suffix) <= maxLength {
		return phrase + suffix
	}

	available := maxLength - textutil.RuneLen(suffix)
	if available <= 0 {
		return company
	}
	return strings.TrimSpace(textutil.WordPrefix(phrase, available)) + suffix
}
