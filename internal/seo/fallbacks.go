package seo

import (
	"github.com/prachinebangla/seogen/internal/classifier"
	"github.com/prachinebangla/seogen/internal/domain"
)

// Placeholder text used when a reply carried only features or benefits.
const (
	placeholderShortDescription = "Premium quality product with exceptional features."
	placeholderLongDescription  = "This exceptional product combines quality, functionality, and style. Perfect for your needs."
)

// cannedDescription returns the fixed description block for a category and
// script. A fresh copy is returned on every call.
func cannedDescription(class classifier.Classification) domain.StructuredDescription {
	switch {
	case class.IsMedicine && class.IsBengali:
		return domain.StructuredDescription{
			ShortDescription: "উচ্চ-মানের ঔষধ যা কার্যকরী চিকিৎসার জন্য।",
			LongDescription:  "এই প্রিমিয়াম ঔষধটি কার্যকরী উপশম প্রদানের জন্য ডিজাইন করা হয়েছে। এটি উচ্চ-মানের উপাদান দিয়ে তৈরি যা নিরাপত্তা এবং কার্যকারিতার সর্বোচ্চ মান পূরণ করে।",
			Features:         []string{"মানসম্পন্ন উপাদান", "কার্যকরী ফর্মুলা", "বিশ্বস্ত ফর্মুলেশন", "মেডিকেল-গ্রেড মান", "প্রতিযোগিতামূলক মূল্য"},
			Benefits:         []string{"দ্রুত উপশম", "ব্যবহার করা সহজ", "নির্ভরযোগ্য ফলাফল", "গ্রাহক সন্তুষ্টি"},
		}
	case class.IsMedicine:
		return domain.StructuredDescription{
			ShortDescription: "High-quality medicine product for effective treatment.",
			LongDescription:  "This premium medicine product is designed to provide effective relief. It is formulated with high-quality ingredients that meet the highest standards of safety and efficacy.",
			Features:         []string{"Quality ingredients", "Effective formula", "Trusted formulation", "Medical-grade quality", "Competitive price"},
			Benefits:         []string{"Fast relief", "Easy to use", "Reliable results", "Customer satisfaction"},
		}
	case class.IsBengali:
		return domain.StructuredDescription{
			ShortDescription: "অসাধারণ বৈশিষ্ট্য সহ প্রিমিয়াম মানের পণ্য।",
			LongDescription:  "এই অসাধারণ পণ্যটি মান, কার্যকারিতা এবং স্টাইল একত্রিত করে। এটি সেরা অভিজ্ঞতা প্রদান এবং উন্নত কর্মক্ষমতা ও ডিজাইনের মাধ্যমে আপনার প্রত্যাশা ছাড়িয়ে যাওয়ার জন্য ডিজাইন করা হয়েছে।",
			Features:         []string{"উচ্চ মান", "টেকসই ডিজাইন", "প্রিমিয়াম উপাদান", "চমৎকার কারিগরি", "উন্নত ফিনিশ"},
			Benefits:         []string{"দীর্ঘস্থায়ী কর্মক্ষমতা", "অর্থের জন্য দুর্দান্ত মূল্য", "গ্রাহক সন্তুষ্টি", "ব্যবহারিক এবং স্টাইলিশ"},
		}
	default:
		return domain.StructuredDescription{
			ShortDescription: "Premium quality product with exceptional features.",
			LongDescription:  "This exceptional product combines quality, functionality, and style. It is designed to provide the best experience and exceed your expectations with superior performance and design.",
			Features:         []string{"High quality", "Durable design", "Premium materials", "Excellent craftsmanship", "Superior finish"},
			Benefits:         []string{"Long-lasting performance", "Great value for money", "Customer satisfaction", "Practical and stylish"},
		}
	}
}
