package words

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const (
	// .NET semantics: \w and \b are Unicode-aware.
	unicodePattern = `\b\w+\b`
	// \b stays Unicode-aware even under the ECMAScript option, so an ASCII
	// run next to a letter like é would never match. Spell the boundary out.
	asciiPattern = `(?<![A-Za-z0-9_])[A-Za-z0-9_]+(?![A-Za-z0-9_])`
)

var (
	unicodeWords = regexp2.MustCompile(unicodePattern, regexp2.None)
	asciiWords   = regexp2.MustCompile(asciiPattern, regexp2.None)
)

// RegexpScanner finds words with a backtracking regular expression
// engine instead of a direct scan. It allocates for every match and is
// much slower than Scanner; it is kept as a reference implementation.
//
// regexp2 does not treat spacing combining marks (Mc) as word
// characters, so on text containing them the two scanners may differ.
type RegexpScanner struct {
	text string
	re   *regexp2.Regexp
	m    *regexp2.Match
	done bool
	err  error
	cur  Span

	// regexp2 reports positions in runes, these map them back to bytes
	runePos, bytePos int
}

// NewRegexpScanner returns a RegexpScanner over text.
func NewRegexpScanner(text string, class Class) *RegexpScanner {
	re := unicodeWords
	if class == ASCII {
		re = asciiWords
	}

	return &RegexpScanner{
		text: text,
		re:   re,
	}
}

// Next advances to the next word and reports whether there is one.
// When Next returns false, check Err.
func (s *RegexpScanner) Next() bool {
	if s.done {
		return false
	}

	var m *regexp2.Match
	var err error
	if s.m == nil {
		m, err = s.re.FindStringMatch(s.text)
	} else {
		m, err = s.re.FindNextMatch(s.m)
	}

	if err != nil || m == nil {
		s.done, s.err = true, err
		return false
	}
	s.m = m

	start := s.seek(m.Index)
	end := s.seek(m.Index + m.Length)
	s.cur = Span{Start: start, Len: end - start}
	return true
}

// seek converts a rune index into a byte offset. Matches only move
// forward, so the cursor never needs to go back.
func (s *RegexpScanner) seek(runeIndex int) int {
	for s.runePos < runeIndex && s.bytePos < len(s.text) {
		_, size := utf8.DecodeRuneInString(s.text[s.bytePos:])
		s.bytePos += size
		s.runePos++
	}
	return s.bytePos
}

// Span returns the position of the current word in bytes.
func (s *RegexpScanner) Span() Span {
	return s.cur
}

// Text returns the current word.
func (s *RegexpScanner) Text() string {
	return s.text[s.cur.Start:s.cur.End()]
}

// Err returns the error that stopped the scan, if any.
// regexp2 only fails when a match timeout is exceeded.
func (s *RegexpScanner) Err() error {
	return s.err
}
