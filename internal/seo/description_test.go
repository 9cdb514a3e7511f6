package seo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prachinebangla/seogen/internal/mocks"
	"github.com/prachinebangla/seogen/internal/textutil"
	"github.com/stretchr/testify/assert"
)

func TestMetaDescription(t *testing.T) {
	t.Parallel()

	t.Run("short reply is padded with content", func(t *testing.T) {
		t.Parallel()
		reply := "Get Napa 500mg Tablet (নাপা) at Shop for fast fever relief."
		suite, recorder := newTestSuite(t, mocks.NewMockBackendWithText(reply))

		got := suite.Descriptions.MetaDescription(context.Background(), "Napa 500mg tablet relieves fever and pain", "Shop")

		assert.Equal(t, reply+" Napa 500mg tablet relieves fever and pain.", got)
		assert.Zero(t, recorder.Fallbacks(GeneratorMetaDescription))
	})

	t.Run("long reply is cut at a sentence", func(t *testing.T) {
		t.Parallel()
		reply := "Get Fexomin 120mg Tablet (ফেক্সোমিন) at Prachine Bangla Online Pharmacy for allergy relief. " +
			"It works for sneezing and runny nose within an hour of the first dose. " +
			"Genuine product with fast home delivery across Dhaka and the rest of the country."
		suite, _ := newTestSuite(t, mocks.NewMockBackendWithText(reply))

		got := suite.Descriptions.MetaDescription(context.Background(), "Fexomin 120mg Tablet is an antihistamine", "")

		assert.LessOrEqual(t, textutil.RuneLen(got), 160)
		assert.True(t, textutil.EndsSentence(got), "got %q", got)
		assert.True(t, strings.HasPrefix(got, "Get Fexomin 120mg Tablet"))
	})

	t.Run("failure falls back to the content", func(t *testing.T) {
		t.Parallel()
		suite, recorder := newTestSuite(t, mocks.NewMockBackendWithError(errors.New("quota exceeded")))

		got := suite.Descriptions.MetaDescription(context.Background(), "Fexomin 120mg Tablet is an antihistamine...", "")

		assert.Equal(t, "Find quality products. Fexomin 120mg Tablet is an antihistamine......", got)
		assert.Equal(t, 1, recorder.Fallbacks(GeneratorMetaDescription))
	})

	t.Run("fallback for long content stays in bounds", func(t *testing.T) {
		t.Parallel()
		suite, _ := newTestSuite(t, mocks.NewMockBackendWithText(""))

		got := suite.Descriptions.MetaDescription(context.Background(), strings.Repeat("allergy relief ", 25), "")

		assert.True(t, strings.HasPrefix(got, fallbackDescriptionLead))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, textutil.RuneLen(got), 160)
	})

	t.Run("blank content", func(t *testing.T) {
		t.Parallel()
		backend := mocks.NewMockBackendWithText("unused")
		suite, _ := newTestSuite(t, backend)

		assert.Empty(t, suite.Descriptions.MetaDescription(context.Background(), " \n ", ""))
		assert.Zero(t, backend.CallCount())
	})
}

func TestMetaDescriptionBrandName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		company string
		want    string
	}{
		{name: "blank medicine company", content: "Napa tablet", want: `Always include "Prachine Bangla Online Pharmacy".`},
		{name: "flat default for products", content: "Leather wallet", company: "Prachine Bangla Online", want: `Always include "Prachine Bangla Online Shop".`},
		{name: "custom company kept", content: "Napa tablet", company: "Health Hub", want: `Always include "Health Hub".`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewMockBackendWithText("Get it now.")
			suite, _ := newTestSuite(t, backend)

			suite.Descriptions.MetaDescription(context.Background(), tc.content, tc.company)
			assert.Contains(t, backend.Prompt(0), tc.want)
		})
	}
}

func TestParaphrase(t *testing.T) {
	t.Parallel()

	t.Run("reply is unquoted and finished", func(t *testing.T) {
		t.Parallel()
		backend := mocks.NewMockBackendWithText(`"Get Napa (নাপা) at Shop with fast relief"`)
		suite, _ := newTestSuite(t, backend)

		got := suite.Descriptions.Paraphrase(context.Background(), "Napa for fever", "")

		assert.Equal(t, "Get Napa (নাপা) at Shop with fast relief.", got)
		assert.Contains(t, backend.Prompt(0), `Always include "Prachine Bangla Online".`)
	})

	t.Run("failure strips the competitor attribution", func(t *testing.T) {
		t.Parallel()
		suite, recorder := newTestSuite(t, mocks.NewMockBackendWithError(errors.New("unavailable")))

		got := suite.Descriptions.Paraphrase(context.Background(), "Get Napa at Arogga Online Pharmacy for fever relief.", "")

		assert.Equal(t, "Get Napa for fever relief.", got)
		assert.Equal(t, 1, recorder.Fallbacks(GeneratorParaphrase))
		assert.Zero(t, recorder.Fallbacks(GeneratorMetaDescription))
	})

	t.Run("long reply is bounded", func(t *testing.T) {
		t.Parallel()
		suite, _ := newTestSuite(t, mocks.NewMockBackendWithText(strings.Repeat("fast relief ", 30)))

		got := suite.Descriptions.Paraphrase(context.Background(), "Napa for fever", "")

		assert.LessOrEqual(t, textutil.RuneLen(got), 161)
		assert.True(t, textutil.EndsSentence(got))
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		suite, _ := newTestSuite(t, mocks.NewMockBackendWithText("unused"))
		assert.Empty(t, suite.Descriptions.Paraphrase(context.Background(), "", ""))
	})
}

func TestPadDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Short one. More text here.", padDescription("Short one.", "More text here", 160))
	// No room for a whole word.
	assert.Equal(t, "Exactly.", padDescription("Exactly", "Unbreakableword", 12))
	assert.Equal(t, "Good deal. Wide.", padDescription("Good deal.", "Wide range of items", 17))
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", unquote(`"text"`))
	assert.Equal(t, `say "hi" now`, unquote(` say  "hi"  now `))
	assert.Equal(t, `"`, unquote(`"`))
}
