package words

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRegexp(t *testing.T, text string, class Class) []Span {
	t.Helper()

	var out []Span
	s := NewRegexpScanner(text, class)
	for s.Next() {
		assert.Equal(t, text[s.Span().Start:s.Span().End()], s.Text())
		out = append(out, s.Span())
	}
	require.NoError(t, s.Err())
	return out
}

func collectSpans(text string, class Class) []Span {
	var out []Span
	Scan([]byte(text), class, func(sp Span) bool {
		out = append(out, sp)
		return true
	})
	return out
}

// The regexp engine is the reference for what `\b\w+\b` matches.
func TestRegexpScanner_AgreesWithScanner(t *testing.T) {
	texts := []string{
		"",
		"!!! ... ,,,",
		"the cat sat on the mat",
		"Hello, World! Hello world.",
		"a a a a",
		"  leading and trailing  ",
		"snake_case 42 x1_y2 __ can't state-of-the-art",
		"naïve café Привет, мир! 東京 ٣٤",
		"ab\xffcd \xe2\x82 tail",
		strings.Repeat("It is a truth universally acknowledged. ", 20),
	}

	for _, text := range texts {
		for _, class := range []Class{Unicode, ASCII} {
			assert.Equalf(t, collectSpans(text, class), collectRegexp(t, text, class),
				"class %v, text %q", class, text)
		}
	}
}

func TestRegexpScanner_ASCIINextToNonASCII(t *testing.T) {
	tests := []struct {
		text string
		want []Span
	}{
		{"naïve", []Span{{0, 2}, {4, 2}}},
		{"a東b", []Span{{0, 1}, {4, 1}}},
		{"éa", []Span{{2, 1}}},
		{"Жx_1Ж", []Span{{2, 3}}},
		{"café au lait", []Span{{0, 3}, {6, 2}, {9, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, collectRegexp(t, tt.text, ASCII))
			assert.Equal(t, tt.want, collectSpans(tt.text, ASCII))
		})
	}
}

func TestRegexpScanner_AgreesOnMixedText(t *testing.T) {
	alphabet := []rune("ab_Z09 .,-éЖ東٣")
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		r := make([]rune, rng.Intn(12))
		for j := range r {
			r[j] = alphabet[rng.Intn(len(alphabet))]
		}
		text := string(r)

		for _, class := range []Class{Unicode, ASCII} {
			require.Equalf(t, collectSpans(text, class), collectRegexp(t, text, class),
				"class %v, text %q", class, text)
		}
	}
}

func TestRegexpScanner_Exhausted(t *testing.T) {
	s := NewRegexpScanner("one", Unicode)
	require.True(t, s.Next())
	assert.Equal(t, "one", s.Text())
	assert.False(t, s.Next())
	assert.False(t, s.Next())
	assert.NoError(t, s.Err())
}
