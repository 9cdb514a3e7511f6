package seo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/domain"
	"github.com/prachinebangla/seogen/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestProductDescriptionGenerator(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText(`{"short_description": "Light wallet.", "long_description": "Slim leather.", "features": ["Slim"], "benefits": ["Fits any pocket"]}`)
	suite, recorder := newTestSuite(t, backend)

	got := suite.Products.Generate(context.Background(), "Leather wallet", "Wallet World")

	assert.Equal(t, domain.StructuredDescription{
		ShortDescription: "Light wallet.",
		LongDescription:  "Slim leather.",
		Features:         []string{"Slim"},
		Benefits:         []string{"Fits any pocket"},
	}, got)
	assert.Contains(t, backend.Prompt(0), `Mention "Wallet World" as the seller`)
	assert.Zero(t, recorder.Fallbacks(GeneratorProductDescription))
}

func TestProductDescriptionGeneratorFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantShort string
	}{
		{name: "english medicine", content: "Napa 500mg tablet", wantShort: "High-quality medicine product for effective treatment."},
		{name: "bengali medicine", content: "সারজেল ২০ মি.গ্রা. ক্যাপসুল capsule", wantShort: "উচ্চ-মানের ঔষধ যা কার্যকরী চিকিৎসার জন্য।"},
		{name: "bengali general", content: "শীতকালীন নরম সোল বেবি জুতা", wantShort: "অসাধারণ বৈশিষ্ট্য সহ প্রিমিয়াম মানের পণ্য।"},
		{name: "general", content: "Leather wallet", wantShort: "Premium quality product with exceptional features."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			suite, recorder := newTestSuite(t, mocks.NewMockBackendWithError(errors.New("down")))

			got := suite.Products.Generate(context.Background(), tc.content, "")

			assert.Equal(t, tc.wantShort, got.ShortDescription)
			assert.NotEmpty(t, got.LongDescription)
			assert.Len(t, got.Features, 5)
			assert.Len(t, got.Benefits, 4)
			assert.Equal(t, 1, recorder.Fallbacks(GeneratorProductDescription))
		})
	}
}

func TestProductDescriptionTemplateSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantPrefix string
	}{
		{
			name:       "bengali medicine",
			content:    "সারজেল ২০ মি.গ্রা. ক্যাপসুল capsule",
			wantPrefix: "Generate a beautiful, SEO-friendly product description for a medicine product in Bengali (Bangla) language.",
		},
		{
			name:       "bengali general",
			content:    "শীতকালীন নরম সোল বেবি জুতা",
			wantPrefix: "Generate a beautiful, SEO-friendly product description for an e-commerce product in Bengali (Bangla) language.",
		},
		{
			name:       "english medicine shares the general template",
			content:    "Napa 500mg tablet",
			wantPrefix: "Generate a beautiful, SEO-friendly product description for an e-commerce product.\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewMockBackendWithText(`{"short_description": "ok"}`)
			suite, _ := newTestSuite(t, backend)

			suite.Products.Generate(context.Background(), tc.content, "")
			assert.True(t, strings.HasPrefix(backend.Prompt(0), tc.wantPrefix), "prompt %q", backend.Prompt(0))
		})
	}
}

func TestProductDescriptionGeneratorBlankInput(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText("unused")
	suite, _ := newTestSuite(t, backend)

	got := suite.Products.Generate(context.Background(), "\n\t", "")
	assert.Equal(t, domain.StructuredDescription{Features: []string{}, Benefits: []string{}}, got)
	assert.Zero(t, backend.CallCount())
}

func TestCannedDescriptionIsACopy(t *testing.T) {
	t.Parallel()

	class := classifier.Classification{IsMedicine: true}
	first := cannedDescription(class)
	first.Features[0] = "changed"

	assert.Equal(t, "Quality ingredients", cannedDescription(class).Features[0])
}
