// Package sentence splits imported article text into practice sentences.
package sentence

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Split returns the sentences of text in order, using Unicode sentence
// boundaries (UAX #29). Sentences are trimmed; blank ones are dropped.
func Split(text string) []string {
	text = norm.NFC.String(text)
	sentences := make([]string, 0, strings.Count(text, ".")+1)

	state := -1
	var s string
	for len(text) > 0 {
		s, text, state = uniseg.FirstSentenceInString(text, state)
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
