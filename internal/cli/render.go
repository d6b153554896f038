package cli

import (
	"strings"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// Render formats segments on one line:
//
//	[=same] [+extra] [-missing] [~s(-a)(+i)t]
//
// Inside a mismatch, unchanged runs are bare and removed or added runs are
// wrapped in (-..) and (+..).
func Render(segments []domain.ClozeSegment) string {
	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg := s.(type) {
		case domain.SameSegment:
			b.WriteString("[=" + seg.Text + "]")
		case domain.ExtraSegment:
			b.WriteString("[+" + seg.Text + "]")
		case domain.MissingSegment:
			b.WriteString("[-" + seg.Text + "]")
		case domain.MismatchSegment:
			b.WriteString("[~")
			for _, p := range seg.Parts {
				switch p.Kind {
				case domain.CharDiffSame:
					b.WriteString(p.Text)
				case domain.CharDiffMissing:
					b.WriteString("(-" + p.Text + ")")
				case domain.CharDiffExtra:
					b.WriteString("(+" + p.Text + ")")
				}
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}
