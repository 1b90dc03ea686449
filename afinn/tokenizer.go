package afinn

import (
	"strings"
	"unicode"
)

// token is a lowercased word with its byte offsets in the scanned string.
type token struct {
	text  string
	start int
	end   int
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// tokenize splits text into lowercase word tokens. Word characters are
// letters, digits and underscore; everything else is a boundary.
func tokenize(text string) []token {
	var tokens []token

	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{text: strings.ToLower(text[start:i]), start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: strings.ToLower(text[start:]), start: start, end: len(text)})
	}

	return tokens
}

// splitWords returns the word tokens of text with their original casing.
func splitWords(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = text[t.start:t.end]
	}
	return words
}

// normalizeText lowercases text and collapses whitespace runs to a single
// space, so that multi-word lexicon terms match across ragged spacing.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
