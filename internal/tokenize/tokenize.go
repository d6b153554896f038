// Package tokenize splits sentences into the units a cloze attempt is graded
// on. The policy is chosen per language: words for space-delimited scripts,
// grapheme clusters for Chinese-like scripts, dictionary morphemes for
// Japanese.
package tokenize

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Func segments already normalized text into tokens.
// It must be deterministic and return an empty slice for blank input.
type Func func(text string) []string

// Words splits text on Unicode word boundaries (UAX #29) and keeps only
// word-like segments. Whitespace and punctuation never become tokens.
func Words(text string) []string {
	tokens := make([]string, 0, len(text)/5+1)
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWordLike(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Chars emits one token per word-like grapheme cluster.
func Chars(text string) []string {
	tokens := make([]string, 0, len(text)/3+1)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if s := g.Str(); isWordLike(s) {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// isWordLike reports whether s contains a letter or a digit.
func isWordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// filterWordLike drops whitespace and punctuation tokens in place.
func filterWordLike(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if isWordLike(t) {
			out = append(out, t)
		}
	}
	return out
}
