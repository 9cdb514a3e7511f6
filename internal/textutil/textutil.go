// Package textutil provides the pure string helpers shared by the generators:
// whitespace normalization, sentence-boundary truncation and script detection.
//
// All lengths are measured in characters (runes), not bytes, so Bengali text
// is bounded the same way as ASCII text.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// bengaliThreshold is the share of Bengali characters above which a text is
// considered to be written in Bengali.
const bengaliThreshold = 0.15

// NormalizeWhitespace collapses runs of whitespace and newlines into single
// spaces and trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Prefix returns the first n characters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// WordPrefix returns at most n characters from the start of s without
// splitting a word. If the first word is longer than n it is hard-cut.
func WordPrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return strings.TrimSpace(s)
	}
	// The cut already falls on a word boundary.
	if r[n] == ' ' {
		return strings.TrimSpace(string(r[:n]))
	}
	cut := lastIndexRune(r[:n], ' ')
	if cut <= 0 {
		return string(r[:n])
	}
	return strings.TrimSpace(string(r[:cut]))
}

// EndsSentence reports whether s ends with '.', '?' or '!'.
func EndsSentence(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return isTerminal(r)
}

// FinishSentence appends a period to s unless it is empty or already ends a
// sentence.
func FinishSentence(s string) string {
	if s == "" || EndsSentence(s) {
		return s
	}
	return s + "."
}

// TruncateAtSentenceBoundary normalizes text and, when it is longer than
// maxLength, cuts it after the last '.', '?' or '!' within the first
// maxLength characters. Without punctuation it cuts at the last space, and
// without a space it hard-cuts at maxLength. A period is appended when the cut
// does not already end a sentence, so the result may exceed maxLength by one
// character only after a hard cut.
func TruncateAtSentenceBoundary(text string, maxLength int) string {
	text = NormalizeWhitespace(text)
	if text == "" {
		return ""
	}

	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	if maxLength <= 0 {
		return ""
	}

	prefix := r[:maxLength]
	cut := -1
	for i := len(prefix) - 1; i >= 0; i-- {
		if isTerminal(prefix[i]) {
			cut = i + 1
			break
		}
	}
	if cut < 0 {
		cut = lastIndexRune(prefix, ' ')
		if cut <= 0 {
			cut = maxLength
		}
	}

	return FinishSentence(strings.TrimSpace(string(r[:cut])))
}

// IsBengali reports whether more than 15% of the characters of text belong to
// the Bengali block (U+0980–U+09FF).
func IsBengali(text string) bool {
	total, bengali := 0, 0
	for _, r := range text {
		total++
		if r >= 0x0980 && r <= 0x09FF {
			bengali++
		}
	}
	if total == 0 || bengali == 0 {
		return false
	}
	return float64(bengali)/float64(total) > bengaliThreshold
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

func lastIndexRune(r []rune, target rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == target {
			return i
		}
	}
	return -1
}
