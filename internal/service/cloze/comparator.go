package cloze

import (
	"slices"

	"github.com/panjuncai/Sola-sub000/internal/domain"
	"github.com/panjuncai/Sola-sub000/internal/service/cloze/chardiff"
)

// Comparator grades a typed attempt against the expected sentence.
// It holds no state besides the tokenizer and is safe for concurrent use.
type Comparator struct {
	tok tokenizer
}

// NewComparator creates a Comparator on top of tok.
func NewComparator(tok tokenizer) *Comparator {
	return &Comparator{tok: tok}
}

// Compare tokenizes both texts with the policy for lang and aligns them.
// It never fails: blank input yields no tokens and unknown tags fall back
// to the tokenizer's default policy.
func (c *Comparator) Compare(expected, attempt, lang string) domain.ClozeResult {
	exp := c.tok.Tokenize(expected, lang)
	act := c.tok.Tokenize(attempt, lang)

	return domain.ClozeResult{
		Correct:  slices.Equal(exp, act),
		Segments: AlignTokens(exp, act),
	}
}

// AlignTokens pairs tokens by position: the Nth typed token is graded
// against the Nth expected token. It does not re-synchronize after an
// inserted or dropped token, so one surplus word early in the attempt
// turns every later slot into a mismatch.
func AlignTokens(expected, actual []string) []domain.ClozeSegment {
	n := max(len(expected), len(actual))
	segments := make([]domain.ClozeSegment, 0, n)

	for i := range n {
		switch {
		case i < len(expected) && i < len(actual):
			if expected[i] == actual[i] {
				segments = append(segments, domain.SameSegment{Text: expected[i]})
			} else {
				segments = append(segments, domain.MismatchSegment{Parts: chardiff.Diff(expected[i], actual[i])})
			}
		case i < len(expected):
			segments = append(segments, domain.MissingSegment{Text: expected[i]})
		default:
			segments = append(segments, domain.ExtraSegment{Text: actual[i]})
		}
	}
	return segments
}
