// Package classifier derives the product category and script of raw product
// content. Every generator classifies the exact content it receives; results
// are never cached because the same product text may be edited between calls.
package classifier

import (
	"strings"

	"github.com/prachinebangla/seogen/internal/textutil"
)

// DefaultMedicineKeywords is the keyword set used when none is configured.
var DefaultMedicineKeywords = []string{"medicine", "tablet", "capsule", "syrup", "injection"}

// Classification is the (isMedicine, isBengali) pair that selects prompt
// templates and fallback content.
type Classification struct {
	IsMedicine bool
	IsBengali  bool
}

// Classifier holds the medicine keyword set.
type Classifier struct {
	medicineKeywords []string
}

// New creates a Classifier. An empty keyword list selects DefaultMedicineKeywords.
func New(medicineKeywords []string) *Classifier {
	if len(medicineKeywords) == 0 {
		medicineKeywords = DefaultMedicineKeywords
	}
	keywords := make([]string, 0, len(medicineKeywords))
	for _, k := range medicineKeywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Classifier{medicineKeywords: keywords}
}

// Classify computes both flags for content.
func (c *Classifier) Classify(content string) Classification {
	return Classification{
		IsMedicine: c.IsMedicine(content),
		IsBengali:  textutil.IsBengali(content),
	}
}

// IsMedicine reports whether content mentions any medicine keyword,
// case-insensitively.
func (c *Classifier) IsMedicine(content string) bool {
	lower := strings.ToLower(content)
	for _, keyword := range c.medicineKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
