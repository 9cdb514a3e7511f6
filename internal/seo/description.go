package seo

import (
	"context"
	"strings"

	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/prachinebangla/seogen/internal/textutil"
)

const fallbackDescriptionLead = "Find quality products. "

// DescriptionGenerator writes meta descriptions and paraphrases existing ones.
type DescriptionGenerator struct {
	base
}

// NewDescriptionGenerator creates a DescriptionGenerator.
func NewDescriptionGenerator(deps Dependencies) (*DescriptionGenerator, error) {
	b, err := newBase(deps, GeneratorMetaDescription)
	if err != nil {
		return nil, err
	}
	return &DescriptionGenerator{base: b}, nil
}

// MetaDescription returns a description of content bounded by
// MaxDescriptionLength and ending a sentence. A reply shorter than the bound
// is padded with the start of content, cut at a word boundary.
func (g *DescriptionGenerator) MetaDescription(ctx context.Context, content, companyName string) string {
	content = textutil.NormalizeWhitespace(content)
	if content == "" {
		return ""
	}
	maxLength := g.settings.MaxDescriptionLength
	company := g.brandName(companyName, g.classifier.Classify(content))

	reply, err := g.generate(ctx, prompt.MetaDescription, prompt.Data{
		Content:     content,
		CompanyName: company,
		MaxLength:   maxLength,
	})
	if err == nil {
		if description := textutil.TruncateAtSentenceBoundary(unquote(reply), maxLength); description != "" {
			return padDescription(description, content, maxLength)
		}
		err = generation.ErrEmptyResponse
	}

	g.fallback(ctx, err)
	budget := maxLength - textutil.RuneLen(fallbackDescriptionLead) - len("...")
	fallback := fallbackDescriptionLead + textutil.WordPrefix(content, budget) + "..."
	return textutil.FinishSentence(textutil.TruncateAtSentenceBoundary(fallback, maxLength))
}

// Paraphrase rewrites text, bounded by MaxDescriptionLength. On failure it
// returns text with the competitor attribution removed.
func (g *DescriptionGenerator) Paraphrase(ctx context.Context, text, companyName string) string {
	text = textutil.NormalizeWhitespace(text)
	if text == "" {
		return ""
	}
	maxLength := g.settings.MaxDescriptionLength

	reply, err := g.generate(ctx, prompt.Paraphrase, prompt.Data{
		Content:     text,
		CompanyName: g.companyName(companyName),
		MaxLength:   maxLength,
	})
	if err == nil {
		if paraphrased := textutil.TruncateAtSentenceBoundary(unquote(reply), maxLength); paraphrased != "" {
			return textutil.FinishSentence(paraphrased)
		}
		err = generation.ErrEmptyResponse
	}

	g.fallbackFor(ctx, GeneratorParaphrase, err)
	if attribution := g.settings.CompetitorAttribution; attribution != "" {
		text = strings.ReplaceAll(text, attribution, "")
	}
	return textutil.FinishSentence(textutil.TruncateAtSentenceBoundary(text, maxLength))
}

// padDescription appends the start of content to a description shorter than
// maxLength. One character is reserved for the closing punctuation.
func padDescription(description, content string, maxLength int) string {
	remaining := maxLength - textutil.RuneLen(description) - 2
	extra := textutil.WordPrefix(content, remaining)
	// A hard cut inside the first word is not padding.
	if extra != "" && (extra == content || strings.HasPrefix(content, extra+" ")) {
		description += " " + extra
	}
	return textutil.FinishSentence(textutil.TruncateAtSentenceBoundary(description, maxLength))
}

// unquote normalizes a reply and removes quotes wrapping the whole text.
func unquote(reply string) string {
	reply = textutil.NormalizeWhitespace(reply)
	if len(reply) >= 2 && reply[0] == '"' && reply[len(reply)-1] == '"' {
		reply = strings.TrimSpace(reply[1 : len(reply)-1])
	}
	return reply
}
