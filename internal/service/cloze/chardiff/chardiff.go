// Package chardiff aligns two short strings character by character using a
// longest-common-subsequence table and reports the result as merged runs.
package chardiff

import (
	"strings"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// op is a single-character edit produced while walking the LCS table.
type op struct {
	kind domain.CharDiffKind
	r    rune
}

// Diff returns the character-level diff between expected and actual.
//
// Characters are runes. Where the walk back through the table has a choice,
// the actual-side character is reported as extra before the expected-side
// character is reported as missing. Adjacent characters of the same kind are
// merged into one part.
func Diff(expected, actual string) []domain.CharDiffPart {
	e, a := []rune(expected), []rune(actual)
	n, m := len(e), len(a)
	if n == 0 && m == 0 {
		return []domain.CharDiffPart{}
	}

	// dp[i*(m+1)+j] = LCS length of e[:i] and a[:j]
	w := m + 1
	dp := make([]int, (n+1)*w)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if e[i-1] == a[j-1] {
				dp[i*w+j] = dp[(i-1)*w+j-1] + 1
			} else {
				dp[i*w+j] = max(dp[(i-1)*w+j], dp[i*w+j-1])
			}
		}
	}

	ops := make([]op, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && e[i-1] == a[j-1]:
			ops = append(ops, op{kind: domain.CharDiffSame, r: e[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i*w+j-1] >= dp[(i-1)*w+j]):
			ops = append(ops, op{kind: domain.CharDiffExtra, r: a[j-1]})
			j--
		default:
			ops = append(ops, op{kind: domain.CharDiffMissing, r: e[i-1]})
			i--
		}
	}

	// The walk runs end to start.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return merge(ops)
}

func merge(ops []op) []domain.CharDiffPart {
	parts := make([]domain.CharDiffPart, 0, 4)
	var b strings.Builder
	for k, o := range ops {
		b.WriteRune(o.r)
		if k == len(ops)-1 || ops[k+1].kind != o.kind {
			parts = append(parts, domain.CharDiffPart{Kind: o.kind, Text: b.String()})
			b.Reset()
		}
	}
	return parts
}
