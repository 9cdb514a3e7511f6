package seo

import (
	"context"

	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/domain"
	"github.com/prachinebangla/seogen/internal/prompt"
	"github.com/prachinebangla/seogen/internal/textutil"
)

// ProductDescriptionGenerator produces four-part structured descriptions.
type ProductDescriptionGenerator struct {
	base
}

// NewProductDescriptionGenerator creates a ProductDescriptionGenerator.
func NewProductDescriptionGenerator(deps Dependencies) (*ProductDescriptionGenerator, error) {
	b, err := newBase(deps, GeneratorProductDescription)
	if err != nil {
		return nil, err
	}
	return &ProductDescriptionGenerator{base: b}, nil
}

// Generate returns a structured description of productInfo. Bengali input
// is described in Bengali. All four fields are always present; if the
// backend fails, a canned block for the product category is returned.
func (g *ProductDescriptionGenerator) Generate(ctx context.Context, productInfo, companyName string) domain.StructuredDescription {
	productInfo = textutil.NormalizeWhitespace(productInfo)
	if productInfo == "" {
		return domain.StructuredDescription{}.Normalized()
	}
	class := g.classifier.Classify(productInfo)

	reply, err := g.generate(ctx, descriptionTemplate(class), prompt.Data{
		Content:     productInfo,
		CompanyName: g.companyName(companyName),
	})
	if err != nil {
		g.fallback(ctx, err)
		return cannedDescription(class)
	}

	description := ParseStructuredDescription(reply)
	if description.Synthesized {
		g.logger.InfoContext(ctx, "description text synthesized from partial reply",
			"features", len(description.Features),
			"benefits", len(description.Benefits))
	}
	return description
}

// descriptionTemplate picks the prompt variant. Non-Bengali medicine and
// general products share one template.
func descriptionTemplate(class classifier.Classification) prompt.Name {
	switch {
	case class.IsBengali && class.IsMedicine:
		return prompt.BengaliMedicineDetails
	case class.IsBengali:
		return prompt.BengaliGeneralDetails
	default:
		return prompt.GeneralProductDetails
	}
}
