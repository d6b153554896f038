package domain

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Language is the canonical base subtag of a BCP 47 tag ("en", "ja", "zh").
type Language string

const (
	// LanguageDefault is used when no usable tag is supplied.
	LanguageDefault Language = "en"
	// LanguageUnknown is a well-formed tag without a recognized language.
	LanguageUnknown Language = "und"
)

// UnspacedLanguages are written without spaces between words.
var UnspacedLanguages = []Language{"zh", "ja", "yue", "wuu", "th", "lo", "km", "my"}

func (l Language) String() string { return string(l) }

// ParseLanguage canonicalises a BCP 47 tag to its base language.
// "en-US" and "EN" both yield "en"; "zh-Hant-TW" yields "zh".
// Well-formed tags whose language is not recognized ("xx", "zz-Latn", "und")
// yield LanguageUnknown; only malformed tags are errors.
func ParseLanguage(tag string) (Language, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", NewValidationError("language", "required")
	}

	t, err := language.Parse(tag)
	if err != nil {
		var verr language.ValueError
		if errors.As(err, &verr) {
			return LanguageUnknown, nil
		}
		return "", NewValidationError("language", "invalid language tag")
	}

	base, conf := t.Base()
	if conf != language.Exact {
		return LanguageUnknown, nil
	}
	return Language(base.String()), nil
}

// ParseLanguageOr returns the parsed tag, or fallback when tag is empty or unusable.
func ParseLanguageOr(tag string, fallback Language) Language {
	l, err := ParseLanguage(tag)
	if err != nil || l == LanguageUnknown {
		return fallback
	}
	return l
}

// IsSpaceDelimited reports whether words in the language are separated by spaces.
func (l Language) IsSpaceDelimited() bool {
	return !slices.Contains(UnspacedLanguages, l)
}
