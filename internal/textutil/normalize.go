package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer folds typographic apostrophes into ASCII so "O’Brien"
// and "O'Brien" produce the same token.
var apostropheReplacer = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Normalize splits text into lowercase word tokens and drops English
// stopwords. Order follows the source text and duplicates are retained.
// Empty input yields an empty, non-nil slice.
func Normalize(text string) []string {
	words := Words(text)
	tokens := words[:0]
	for _, word := range words {
		if IsStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Words splits text into lowercase word tokens without stopword filtering.
func Words(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	folded := Fold(text)
	raw := strings.FieldsFunc(folded, isSeparator)
	words := make([]string, 0, len(raw))
	for _, word := range raw {
		word = strings.Trim(word, "'")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// Fold applies Unicode compatibility normalization and English lowercasing
// to text without splitting it.
func Fold(text string) string {
	text = norm.NFKC.String(text)
	text = apostropheReplacer.Replace(text)
	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.English).String(text)
}

func isSeparator(r rune) bool {
	if r == '\'' {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.Is(unicode.Mn, r)
}
