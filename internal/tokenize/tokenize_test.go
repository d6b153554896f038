package tokenize

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple sentence", input: "the cat sat", want: []string{"the", "cat", "sat"}},
		{name: "punctuation dropped", input: "Hello, world!", want: []string{"Hello", "world"}},
		{name: "apostrophe kept", input: "don't stop", want: []string{"don't", "stop"}},
		{name: "decimal kept", input: "pi is 3.14", want: []string{"pi", "is", "3.14"}},
		{name: "extra whitespace", input: "  the \t cat\n", want: []string{"the", "cat"}},
		{name: "cyrillic", input: "Мама мыла раму.", want: []string{"Мама", "мыла", "раму"}},
		{name: "korean", input: "나는 학생입니다.", want: []string{"나는", "학생입니다"}},
		{name: "empty", input: "", want: []string{}},
		{name: "whitespace only", input: " \t\n ", want: []string{}},
		{name: "punctuation only", input: "?!...", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "chinese", input: "我是学生。", want: []string{"我", "是", "学", "生"}},
		{name: "spaces ignored", input: "你 好", want: []string{"你", "好"}},
		{name: "combining mark stays with base", input: "e\u0301a", want: []string{"e\u0301", "a"}},
		{name: "empty", input: "", want: []string{}},
		{name: "punctuation only", input: "，。！", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Chars(tt.input))
		})
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Words)
	r.Register("zh", Chars)

	assert.Equal(t, []string{"the", "cat"}, r.Tokenize("the cat", "en"))
	assert.Equal(t, []string{"猫", "が"}, r.Tokenize("猫が", "zh-CN"))
	assert.Equal(t, []string{"猫", "が"}, r.Tokenize("猫が", "ZH"))
}

func TestRegistry_UnknownTagUsesFallback(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Words)
	r.Register("zh", Chars)

	for _, tag := range []string{"", "not a tag!", "tlh", "und"} {
		assert.Equal(t, []string{"ab", "cd"}, r.Tokenize("ab cd", tag), "tag %q", tag)
	}
}

func TestRegistry_NormalizesToNFC(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Words)

	decomposed := r.Tokenize("Cafe\u0301 noir", "fr")
	composed := r.Tokenize("Caf\u00e9 noir", "fr")

	require.Len(t, decomposed, 2)
	assert.Equal(t, "Caf\u00e9", decomposed[0])
	assert.Equal(t, composed, decomposed)
}

func TestRegistry_Deterministic(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Words)
	r.Register("zh", Chars)

	inputs := []struct{ text, tag string }{
		{"The quick brown fox.", "en"},
		{"我们明天见。", "zh"},
		{"", "en"},
	}
	for _, in := range inputs {
		first := r.Tokenize(in.text, in.tag)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, r.Tokenize(in.text, in.tag))
		}
	}
}

func TestNewDefaultRegistry_Japanese(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the IPA dictionary")
	}

	r := NewDefaultRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, []string{"私", "は", "学生", "です"}, r.Tokenize("私は学生です。", "ja"))
	assert.Empty(t, r.Tokenize("  ", "ja"))
	assert.Equal(t, []string{"我", "是"}, r.Tokenize("我是", "zh-Hans"))
	assert.Equal(t, []string{"I", "am"}, r.Tokenize("I am", "en-GB"))
}

func TestNewDefaultRegistry_UnspacedLanguagesUseChars(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, lang := range domain.UnspacedLanguages {
		if lang == "ja" {
			continue
		}
		assert.Equal(t, []string{"a", "b"}, r.Tokenize("ab", lang.String()), lang)
		assert.False(t, lang.IsSpaceDelimited(), lang)
	}
	assert.Equal(t, []string{"ab"}, r.Tokenize("ab", "ko"))
}

func TestLazy_LoadsOnceOnFirstUse(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	loads := 0
	load := func() (Func, error) {
		mu.Lock()
		defer mu.Unlock()
		loads++
		return Words, nil
	}

	fn := lazy(load, Chars, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, 0, loads)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"ab", "cd"}, fn("ab cd"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, loads)
}

func TestLazy_FallsBackWhenLoadFails(t *testing.T) {
	t.Parallel()

	fn := lazy(func() (Func, error) {
		return nil, errors.New("dictionary missing")
	}, Chars, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, []string{"私", "は"}, fn("私は"))
}
