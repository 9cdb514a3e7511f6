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

func TestTitleGenerator(t *testing.T) {
	t.Parallel()

	errDown := errors.New("backend down")

	tests := []struct {
		name         string
		content      string
		company      string
		backend      *mocks.MockBackend
		want         string
		wantFallback bool
	}{
		{
			name:    "medicine title drops the Bengali name to fit",
			content: "Fexomin 120mg Tablet is an antihistamine...",
			backend: mocks.NewMockBackendWithText("Fexomin 120mg Tablet|ফেক্সোমিন ১২০ মি.গ্রা. ট্যাবলেট"),
			want:    "Fexomin 120mg Tablet from Prachine Bangla Online Pharmacy",
		},
		{
			name:    "medicine title keeps both names when they fit",
			content: "Napa 500mg Tablet for fever",
			company: "Shop X",
			backend: mocks.NewMockBackendWithText("Napa 500mg Tablet|নাপা ৫০০ মি.গ্রা. ট্যাবলেট"),
			want:    "Napa 500mg Tablet and নাপা ৫০০ মি.গ্রা. ট্যাবলেট from Shop X",
		},
		{
			name:    "quoted reply without Bengali segment",
			content: "Sergel 20mg capsule",
			company: "Health Hub",
			backend: mocks.NewMockBackendWithText("\"Sergel 20mg Capsule\"\n"),
			want:    "Sergel 20mg Capsule from Health Hub",
		},
		{
			name:         "medicine extraction failure uses the content",
			content:      "Napa 500mg tablet",
			company:      "ABC",
			backend:      mocks.NewMockBackendWithError(errDown),
			want:         "Napa 500mg tablet from ABC",
			wantFallback: true,
		},
		{
			name:    "product title is cut at a word before the suffix",
			content: "Men's summer converse shoes, stylish and exclusive",
			backend: mocks.NewMockBackendWithText("Shoes Stylish Summer Exclusive Converse Men"),
			want:    "Shoes Stylish Summer Exclusive Converse available at Prachine Bangla Online Shop",
		},
		{
			name:    "custom company is kept for products",
			content: "Baby shoes for winter",
			company: "Kids Corner",
			backend: mocks.NewMockBackendWithText("Baby Shoes Winter Plush"),
			want:    "Baby Shoes Winter Plush available at Kids Corner",
		},
		{
			name:         "product failure uses the start of the content",
			content:      "Wireless earbuds with deep bass and 30 hours battery life for everyday use",
			company:      "Gadget Hub",
			backend:      mocks.NewMockBackendWithError(errDown),
			want:         "Wireless earbuds with deep bass and 30 hours batte... available at Gadget Hub",
			wantFallback: true,
		},
		{
			name:         "empty product reply uses the start of the content",
			content:      "Cotton shirt",
			company:      "Shop",
			backend:      mocks.NewMockBackendWithText("  "),
			want:         "Cotton shirt... available at Shop",
			wantFallback: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			suite, recorder := newTestSuite(t, tc.backend)
			got := suite.Titles.Generate(context.Background(), tc.content, tc.company)

			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, textutil.RuneLen(got), 80)
			if tc.wantFallback {
				assert.Equal(t, 1, recorder.Fallbacks(GeneratorTitle))
			} else {
				assert.Zero(t, recorder.Fallbacks(GeneratorTitle))
			}
		})
	}
}

func TestTitleGeneratorChoosesPromptByCategory(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText("Napa 500mg Tablet|নাপা")
	suite, _ := newTestSuite(t, backend)

	suite.Titles.Generate(context.Background(), "Napa 500mg Tablet", "")
	assert.Contains(t, backend.Prompt(0), "Extract medicine information")

	backend.Reset()
	suite.Titles.Generate(context.Background(), "Leather wallet", "")
	assert.Contains(t, backend.Prompt(0), "Product Type Key Features")
}

func TestTitleLengthBound(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("Paracetamol ", 12)
	companies := []string{
		"A",
		"Prachine Bangla Online Pharmacy",
		strings.Repeat("x", 30),
		"Shop With A Much Longer Name",
	}

	for _, company := range companies {
		for _, bengali := range []string{"", "প্যারাসিটামল ৫০০ মি.গ্রা. ট্যাবলেট", strings.Repeat("ক", 90)} {
			got := formatMedicineTitle(strings.TrimSpace(long), bengali, company, 80)
			assert.LessOrEqual(t, textutil.RuneLen(got), 80, "medicine title %q", got)
			assert.True(t, strings.HasSuffix(got, " from "+company), "attribution is never truncated: %q", got)
		}

		got := formatProductTitle(strings.TrimSpace(long), company, 80)
		assert.LessOrEqual(t, textutil.RuneLen(got), 80, "product title %q", got)
		assert.True(t, strings.HasSuffix(got, " available at "+company))
	}
}

func TestFormatMedicineTitleCutsAtAnd(t *testing.T) {
	t.Parallel()

	got := formatMedicineTitle("Sergel 20mg Capsule", "সারজেল ২০ মি.গ্রা. ক্যাপসুল গ্যাস্ট্রিক আলসার", "Prachine Bangla Online Pharmacy", 80)
	assert.Equal(t, "Sergel 20mg Capsule from Prachine Bangla Online Pharmacy", got)
}

func TestFormatTitleOversizedCompany(t *testing.T) {
	t.Parallel()

	company := strings.Repeat("C", 90)
	assert.Equal(t, company, formatMedicineTitle("Napa", "", company, 80))
	assert.Equal(t, company, formatProductTitle("Shoes", company, 80))
}
