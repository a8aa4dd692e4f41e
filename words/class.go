// Package words splits text into words without copying them.
//
// A word is a maximal run of word characters, the same thing the
// regular expression `\b\w+\b` matches when scanning left to right.
// What counts as a word character is decided by a Class.
package words

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class selects the set of word characters.
type Class int

const (
	// Unicode treats letters, decimal digits, nonspacing and spacing
	// combining marks, and connector punctuation (which includes the
	// underscore) as word characters. This is the .NET definition of \w.
	Unicode Class = iota
	// ASCII only treats [A-Za-z0-9_] as word characters.
	// Any byte outside of ASCII is a separator.
	ASCII
)

func (c Class) String() string {
	switch c {
	case Unicode:
		return "unicode"
	case ASCII:
		return "ascii"
	default:
		return "<invalid words.Class>"
	}
}

// ParseClass is the inverse of Class.String. It is case-insensitive.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unicode", "":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("unknown word class %q", s)
	}
}

var asciiWord = func() (t [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
		t[c-'a'+'A'] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	t['_'] = true
	return
}()

var unicodeWordTables = []*unicode.RangeTable{
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
}

// IsWordRune reports whether r is a word character in this class.
func (c Class) IsWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 0 && asciiWord[r]
	}

	switch c {
	case ASCII:
		return false
	case Unicode:
		return unicode.IsLetter(r) || unicode.In(r, unicodeWordTables...)
	default:
		panic("unhandled case in IsWordRune")
	}
}

// at decodes the rune starting at buf[i] and reports whether it is a
// word character. Invalid UTF-8 decodes as a one byte separator.
func (c Class) at(buf []byte, i int) (word bool, size int) {
	b := buf[i]
	if b < utf8.RuneSelf || c == ASCII {
		return asciiWord[b], 1
	}

	r, size := utf8.DecodeRune(buf[i:])
	if r == utf8.RuneError && size == 1 {
		return false, 1
	}
	return c.IsWordRune(r), size
}

// before reports whether the rune ending just before buf[i] is a word character.
func (c Class) before(buf []byte, i int) bool {
	b := buf[i-1]
	if b < utf8.RuneSelf || c == ASCII {
		return asciiWord[b]
	}

	r, size := utf8.DecodeLastRune(buf[:i])
	if r == utf8.RuneError && size == 1 {
		return false
	}
	return c.IsWordRune(r)
}
