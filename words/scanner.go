package words

import (
	"unicode/utf8"
	"unsafe"
)

// Span identifies one word as a byte offset and byte length
// into the buffer it was scanned from.
type Span struct {
	Start int
	Len   int
}

// End returns the offset just past the last byte of the word.
func (s Span) End() int {
	return s.Start + s.Len
}

// In returns the bytes of the word inside buf. The result aliases buf.
func (s Span) In(buf []byte) []byte {
	return buf[s.Start:s.End():s.End()]
}

// Scanner produces the words of a buffer one at a time.
// It never copies or allocates, and it keeps only a few ints of state.
// The usual idiom is:
//
//	s := words.NewScanner(buf, words.Unicode)
//	for s.Next() {
//		w := s.Bytes()
//		// do stuff with w, but don't keep it past buf's lifetime ...
//	}
//
// A Scanner is not safe for concurrent use, but any number of
// Scanners may read the same buffer at once.
type Scanner struct {
	buf   []byte
	class Class
	pos   int
	cur   Span
}

// NewScanner returns a Scanner over buf positioned before the first word.
// buf must not be modified while the Scanner is in use.
func NewScanner(buf []byte, class Class) Scanner {
	return Scanner{
		buf:   buf,
		class: class,
	}
}

// NewStringScanner is like NewScanner, but reads a string.
// Bytes returns views of s that must not be written to.
func NewStringScanner(s string, class Class) Scanner {
	return NewScanner(unsafe.Slice(unsafe.StringData(s), len(s)), class)
}

// Reset rewinds the Scanner to the start of buf, keeping its class.
// Passing the previous buffer again restarts the scan.
func (s *Scanner) Reset(buf []byte) {
	*s = Scanner{
		buf:   buf,
		class: s.class,
	}
}

// Next advances to the next word and reports whether there is one.
// Next must be called before Span or Bytes.
func (s *Scanner) Next() bool {
	if s.class == ASCII {
		return s.nextASCII()
	}
	return s.nextUnicode()
}

func (s *Scanner) nextASCII() bool {
	buf, i := s.buf, s.pos

	for i < len(buf) && !asciiWord[buf[i]] {
		i++
	}
	if i == len(buf) {
		s.pos = i
		return false
	}

	start := i
	for i < len(buf) && asciiWord[buf[i]] {
		i++
	}

	s.cur = Span{Start: start, Len: i - start}
	s.pos = i
	return true
}

func (s *Scanner) nextUnicode() bool {
	buf, i := s.buf, s.pos
	start := -1

	for i < len(buf) {
		var word bool
		var size int
		if b := buf[i]; b < utf8.RuneSelf {
			word, size = asciiWord[b], 1
		} else {
			word, size = s.class.at(buf, i)
		}

		if word {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			break
		}
		i += size
	}

	s.pos = i
	if start < 0 {
		return false
	}

	s.cur = Span{Start: start, Len: i - start}
	return true
}

// Span returns the position of the current word.
func (s *Scanner) Span() Span {
	return s.cur
}

// Bytes returns the current word as a view into the scanned buffer.
func (s *Scanner) Bytes() []byte {
	return s.cur.In(s.buf)
}

// Scan calls yield for every word in buf, in order.
// If yield returns false, scanning stops early.
func Scan(buf []byte, class Class, yield func(Span) bool) {
	s := NewScanner(buf, class)
	for s.Next() {
		if !yield(s.cur) {
			return
		}
	}
}

// Count returns the number of words in buf.
func Count(buf []byte, class Class) int {
	n := 0
	s := NewScanner(buf, class)
	for s.Next() {
		n++
	}
	return n
}

// Boundary returns the smallest offset j >= i such that cutting buf at j
// does not split a word or a UTF-8 sequence. Scanning buf[:j] and buf[j:]
// separately finds the same words as scanning buf whole.
func Boundary(buf []byte, class Class, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(buf) {
		return len(buf)
	}

	for i < len(buf) && !utf8.RuneStart(buf[i]) {
		i++
	}

	for i < len(buf) {
		if !class.before(buf, i) {
			return i
		}
		word, size := class.at(buf, i)
		if !word {
			return i
		}
		i += size
	}

	return len(buf)
}
