package tokenize

import (
	"log/slog"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// Registry maps languages to tokenization policies.
// Register everything before the first Tokenize call; after that the
// registry is read-only and safe for concurrent use.
type Registry struct {
	byLang   map[domain.Language]Func
	fallback Func
}

// NewRegistry creates a Registry that uses fallback for unknown languages.
func NewRegistry(fallback Func) *Registry {
	return &Registry{
		byLang:   make(map[domain.Language]Func),
		fallback: fallback,
	}
}

// Register binds fn to lang, replacing any previous binding.
func (r *Registry) Register(lang domain.Language, fn Func) {
	r.byLang[lang] = fn
}

// Tokenize segments text using the policy registered for tag.
// Text is NFC-normalized first so composed and decomposed input agree.
// Unparseable or unknown tags use the fallback policy.
func (r *Registry) Tokenize(text, tag string) []string {
	fn, ok := r.byLang[domain.ParseLanguageOr(tag, "")]
	if !ok {
		fn = r.fallback
	}
	return fn(norm.NFC.String(text))
}

// NewDefaultRegistry wires the built-in policies: words by default,
// grapheme clusters for languages written without spaces, and dictionary
// morphemes for Japanese. The Japanese dictionary is loaded on first use;
// if it cannot be loaded, Japanese falls back to grapheme clusters.
func NewDefaultRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(Words)

	for _, lang := range domain.UnspacedLanguages {
		r.Register(lang, Chars)
	}
	r.Register("ja", lazy(NewJapanese, Chars, logger))

	return r
}

// lazy defers load until the first call and uses fallback if it fails.
func lazy(load func() (Func, error), fallback Func, logger *slog.Logger) Func {
	var (
		once sync.Once
		fn   Func
	)
	return func(text string) []string {
		once.Do(func() {
			var err error
			if fn, err = load(); err != nil {
				logger.Warn("tokenizer unavailable, using characters",
					slog.String("error", err.Error()))
				fn = fallback
			}
		})
		return fn(text)
	}
}
