package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/prachinebangla/seogen/internal/domain"
	"github.com/prachinebangla/seogen/internal/textutil"
)

// contentSelectors are tried in order; every match contributes its text.
var contentSelectors = []string{
	"h1",
	"div.product-details",
	"div.product-description",
	"div.product-info",
	"div#product-info",
	"div.details",
	"div.specifications",
}

// minContentLength is the number of characters a matched block needs to be
// kept.
const minContentLength = 20

// Parse extracts metadata from an HTML document fetched from pageURL.
func Parse(body []byte, pageURL string) (domain.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.PageMetadata{}, fmt.Errorf("parse html: %w", err)
	}

	description := metaDescription(doc)
	parts := selectorText(doc)
	parts = withStructuredData(doc, parts)

	content := textutil.NormalizeWhitespace(strings.Join(parts, " "))
	if content == "" {
		content = readableText(body, pageURL)
	}
	if content == "" {
		content = description
	}

	return domain.PageMetadata{
		Title:       textutil.NormalizeWhitespace(doc.Find("title").First().Text()),
		Description: textutil.NormalizeWhitespace(description),
		Content:     textutil.NormalizeWhitespace(content),
	}, nil
}

// metaDescription prefers the description meta tag over og:description.
func metaDescription(doc *goquery.Document) string {
	if meta := doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		return meta.AttrOr("content", "")
	}
	return doc.Find(`meta[property="og:description"]`).First().AttrOr("content", "")
}

func selectorText(doc *goquery.Document) []string {
	var parts []string
	for _, selector := range contentSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			text := strings.Join(textNodes(s, nil), " ")
			if textutil.RuneLen(text) > minContentLength {
				parts = append(parts, text)
			}
		})
	}
	return parts
}

// textNodes collects the trimmed text nodes under s, skipping scripts and
// styles, so adjacent elements stay separated by a space.
func textNodes(s *goquery.Selection, acc []string) []string {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			if text := strings.TrimSpace(c.Text()); text != "" {
				acc = append(acc, text)
			}
		case "script", "style", "#comment":
		default:
			acc = textNodes(c, acc)
		}
	})
	return acc
}

// withStructuredData prepends the JSON-LD name and appends its description.
// Only the first JSON-LD block is read and only when it is a single object.
func withStructuredData(doc *goquery.Document, parts []string) []string {
	script := doc.Find(`script[type="application/ld+json"]`).First()
	if script.Length() == 0 {
		return parts
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
		return parts
	}
	if description, ok := data["description"].(string); ok && description != "" {
		parts = append(parts, description)
	}
	if name, ok := data["name"].(string); ok && name != "" {
		parts = append([]string{name}, parts...)
	}
	return parts
}

// readableText runs a readability pass over the document.
func readableText(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return ""
	}
	return textutil.NormalizeWhitespace(article.TextContent)
}
