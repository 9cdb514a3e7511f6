package seo

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/prachinebangla/seogen/internal/domain"
)

var (
	shortDescriptionPattern = regexp.MustCompile(`"short_description"\s*:\s*"([^"]+)"`)
	longDescriptionPattern  = regexp.MustCompile(`"long_description"\s*:\s*"([^"]+)"`)
	featuresPattern         = regexp.MustCompile(`"features"\s*:\s*\[([^\]]+)\]`)
	benefitsPattern         = regexp.MustCompile(`"benefits"\s*:\s*\[([^\]]+)\]`)
	quotedItemPattern       = regexp.MustCompile(`"([^"]+)"`)
)

// ParseStructuredDescription turns a model reply into a structured
// description without ever failing.
//
// The text between the first '{' and the last '}' is parsed as JSON first,
// with missing keys left empty. If that fails each field is extracted with
// patterns, then with plain-text headings. When neither description text was
// found but features or benefits were, placeholder descriptions are filled in
// and Synthesized is set.
func ParseStructuredDescription(raw string) domain.StructuredDescription {
	d, ok := parseJSONDescription(raw)
	if !ok {
		d = extractDescription(raw)
	}

	if d.ShortDescription == "" && d.LongDescription == "" && (len(d.Features) > 0 || len(d.Benefits) > 0) {
		d.ShortDescription = placeholderShortDescription
		d.LongDescription = placeholderLongDescription
		d.Synthesized = true
	}
	return d.Normalized()
}

func parseJSONDescription(raw string) (domain.StructuredDescription, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return domain.StructuredDescription{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return domain.StructuredDescription{}, false
	}

	return domain.StructuredDescription{
		ShortDescription: stringValue(fields["short_description"]),
		LongDescription:  stringValue(fields["long_description"]),
		Features:         listValue(fields["features"]),
		Benefits:         listValue(fields["benefits"]),
	}, true
}

// stringValue coerces a decoded JSON value to trimmed text.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []any:
		parts := listValue(val)
		return strings.Join(parts, " ")
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// listValue coerces a decoded JSON value to a list of non-empty strings.
func listValue(v any) []string {
	switch val := v.(type) {
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return []string{s}
		}
	}
	return []string{}
}

// extractDescription recovers fields from text that is not valid JSON.
func extractDescription(raw string) domain.StructuredDescription {
	d := domain.StructuredDescription{
		ShortDescription: firstSubmatch(shortDescriptionPattern, raw),
		LongDescription:  firstSubmatch(longDescriptionPattern, raw),
		Features:         quotedList(featuresPattern, raw),
		Benefits:         quotedList(benefitsPattern, raw),
	}

	if d.LongDescription == "" && strings.Contains(raw, `"long_description"`) {
		d.LongDescription = lenientLongDescription(raw)
	}

	lower := strings.ToLower(raw)
	if d.ShortDescription == "" && strings.Contains(lower, "short description") {
		d.ShortDescription = lineAfterHeading(raw, "short description")
	}
	if d.LongDescription == "" && strings.Contains(lower, "detailed description") {
		d.LongDescription = sectionAfterHeading(raw, "detailed description")
	}
	return d
}

func firstSubmatch(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func quotedList(re *regexp.Regexp, raw string) []string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return []string{}
	}
	items := []string{}
	for _, item := range quotedItemPattern.FindAllStringSubmatch(m[1], -1) {
		if s := strings.TrimSpace(item[1]); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// lenientLongDescription reads the first quoted run after the
// "long_description" key and before "features".
func lenientLongDescription(raw string) string {
	_, after, _ := strings.Cut(raw, `"long_description"`)
	section, _, _ := strings.Cut(after, `"features"`)
	parts := strings.Split(section, `"`)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// lineAfterHeading returns the line following the first line containing heading.
func lineAfterHeading(raw, heading string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), heading) && i+1 < len(lines) {
			return strings.TrimSpace(lines[i+1])
		}
	}
	return ""
}

// sectionAfterHeading joins the lines after heading up to the next line that
// mentions features or benefits.
func sectionAfterHeading(raw, heading string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), heading) {
			continue
		}
		var section []string
		for _, next := range lines[i+1:] {
			lower := strings.ToLower(next)
			if strings.Contains(lower, "features") || strings.Contains(lower, "benefits") {
				break
			}
			if next = strings.TrimSpace(next); next != "" {
				section = append(section, next)
			}
		}
		return strings.Join(section, " ")
	}
	return ""
}
