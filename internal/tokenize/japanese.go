package tokenize

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// NewJapanese loads the IPA dictionary and returns a morpheme tokenizer.
// Loading is slow; build it once and share it.
func NewJapanese() (Func, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenize: load ipa dictionary: %w", err)
	}

	return func(text string) []string {
		if text == "" {
			return []string{}
		}
		return filterWordLike(t.Wakati(text))
	}, nil
}
