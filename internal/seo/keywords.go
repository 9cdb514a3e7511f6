package seo

import (
	"context"
	"regexp"
	"strings"

	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/prachinebangla/seogen/internal/textutil"
)

// Keyword list bounds.
const (
	DefaultKeywordCount = 10
	MinKeywordCount     = 5
	MaxKeywordCount     = 10

	fallbackKeywordCount = 7
)

// KeywordGenerator produces comma-separated SEO keyword lists.
type KeywordGenerator struct {
	base
}

// NewKeywordGenerator creates a KeywordGenerator.
func NewKeywordGenerator(deps Dependencies) (*KeywordGenerator, error) {
	b, err := newBase(deps, GeneratorKeywords)
	if err != nil {
		return nil, err
	}
	return &KeywordGenerator{base: b}, nil
}

// ClampKeywordCount maps a requested count onto [MinKeywordCount,
// MaxKeywordCount]; zero or less selects DefaultKeywordCount.
func ClampKeywordCount(count int) int {
	if count <= 0 {
		return DefaultKeywordCount
	}
	return max(MinKeywordCount, min(count, MaxKeywordCount))
}

// Generate returns between MinKeywordCount and MaxKeywordCount keywords for
// content, at least one of which contains the company name. Blank content
// yields an empty list.
func (g *KeywordGenerator) Generate(ctx context.Context, content string, count int, companyName string) []string {
	content = textutil.NormalizeWhitespace(content)
	if content == "" {
		return []string{}
	}
	count = ClampKeywordCount(count)
	company := g.companyName(companyName)
	isMedicine := g.classifier.IsMedicine(content)

	name := prompt.GeneralKeywords
	if isMedicine {
		name = prompt.MedicineKeywords
	}

	reply, err := g.generate(ctx, name, prompt.Data{
		Content:      content,
		CompanyName:  company,
		KeywordCount: count,
	})
	if err != nil {
		g.fallback(ctx, err)
		return defaultKeywords(isMedicine, company)[:fallbackKeywordCount]
	}

	keywords := splitKeywords(reply)
	if len(keywords) == 0 {
		g.logger.WarnContext(ctx, "keyword reply contained no keywords",
			"error", generation.ErrEmptyResponse)
	}
	if len(keywords) > count {
		keywords = keywords[:count]
	}
	if len(keywords) < MinKeywordCount {
		defaults := defaultKeywords(isMedicine, company)
		keywords = append(keywords, defaults[:MinKeywordCount-len(keywords)]...)
	}

	if !containsCompany(keywords, company) {
		branded := company + " products"
		if isMedicine {
			branded = company + " medicine"
		}
		if len(keywords) >= MaxKeywordCount {
			keywords[len(keywords)-1] = branded
		} else {
			keywords = append(keywords, branded)
		}
	}
	return keywords
}

var listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+`)

// splitKeywords splits a reply on commas and line breaks, trimming quotes,
// list markers and blanks.
func splitKeywords(reply string) []string {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		f = listMarker.ReplaceAllString(strings.TrimSpace(f), "")
		f = strings.Trim(f, "\"'` ")
		if f = textutil.NormalizeWhitespace(f); f != "" {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

func containsCompany(keywords []string, company string) bool {
	for _, k := range keywords {
		if strings.Contains(k, company) {
			return true
		}
	}
	return false
}

// defaultKeywords returns the ordered generic keyword list for a category.
func defaultKeywords(isMedicine bool, company string) []string {
	if isMedicine {
		return []string{
			"medicine", "pharmacy", "health", "treatment", "online medicine",
			company + " medicine", company + " pharmacy", company + " health products",
		}
	}
	return []string{
		"online shopping", "best price", "quality product", "fast delivery", "discount",
		company + " shop", company + " products", company + " online store",
	}
}
