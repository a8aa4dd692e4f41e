// Package freq counts how often each word occurs in a text buffer.
//
// Counting never copies a word that is already in the table: the word is
// looked up through a view into the buffer, and only a word seen for the
// first time is copied into an owned key. A pass over text with D distinct
// words and O occurrences therefore makes D key allocations, not O.
package freq

import (
	"golang.org/x/exp/slices"

	"go.lepak.sg/wordfreq/lookup"
	"go.lepak.sg/wordfreq/words"
)

// Entry represents a word-count pair.
type Entry struct {
	Word  string
	Count int
}

// Table is a frequency table from word content to occurrence count.
// Every count is at least 1. Table remembers the order in which words
// were first seen, and iterates in that order.
// The zero value is an empty table that splits words by Unicode class.
// Table is not safe for concurrent use.
type Table struct {
	words lookup.Table[int]
	class words.Class
	total int
}

// New returns an empty table that splits words by class.
// sizeHint is a guess of the number of distinct words; pass 0 if unsure.
func New(class words.Class, sizeHint int) *Table {
	return &Table{
		words: *lookup.New[int](sizeHint),
		class: class,
	}
}

// Count counts the words in buf into a new table, using Unicode word characters.
func Count(buf []byte) *Table {
	t := New(words.Unicode, 0)
	t.Count(buf)
	return t
}

// CountString is like Count, but reads a string.
func CountString(s string) *Table {
	t := New(words.Unicode, 0)
	t.CountString(s)
	return t
}

// Count adds the words in buf to the table.
// buf is only read during the call and may be reused afterwards.
func (t *Table) Count(buf []byte) {
	s := words.NewScanner(buf, t.class)
	t.countFrom(&s)
}

// CountString adds the words in s to the table.
func (t *Table) CountString(str string) {
	s := words.NewStringScanner(str, t.class)
	t.countFrom(&s)
}

func (t *Table) countFrom(s *words.Scanner) {
	for s.Next() {
		n, _ := t.words.Upsert(s.Bytes())
		*n++
		t.total++
	}
}

// Class returns the word class the table splits words by.
func (t *Table) Class() words.Class {
	return t.class
}

// Get returns the count of word, or 0 if it was never seen.
func (t *Table) Get(word string) int {
	n, _ := t.words.GetString(word)
	return n
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return t.words.Len()
}

// Total returns the number of word occurrences counted,
// which is also the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// KeyAllocs returns the number of words copied into the table since it was
// created or last Reset. Words added by Merge are shared, not copied.
func (t *Table) KeyAllocs() int {
	return t.words.KeyAllocs()
}

// Reset empties the table for another pass. Its memory is kept, so the
// next pass only allocates the keys of the words it finds.
func (t *Table) Reset() {
	t.words.Reset()
	t.total = 0
}

// Range calls f for every entry in the order words were first seen.
// If f returns false, iteration stops early.
func (t *Table) Range(f func(Entry) bool) {
	t.words.Range(func(w string, n int) bool {
		return f(Entry{Word: w, Count: n})
	})
}

// Entries returns every entry in the order words were first seen.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Len())
	i := t.words.Iterator()
	for i.Next() {
		w, n := i.Entry()
		out = append(out, Entry{Word: w, Count: n})
	}
	return out
}

// Sorted returns every entry ordered by word.
func (t *Table) Sorted() []Entry {
	out := t.Entries()
	slices.SortFunc(out, func(a, b Entry) bool {
		return a.Word < b.Word
	})
	return out
}

// Map copies the table into a map.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, t.Len())
	t.words.Range(func(w string, n int) bool {
		m[w] = n
		return true
	})
	return m
}

// Merge adds every count in other to t. other is not modified.
// Words new to t share their key with other.
func (t *Table) Merge(other *Table) {
	other.words.Range(func(w string, n int) bool {
		c, _ := t.words.UpsertString(w)
		*c += n
		return true
	})
	t.total += other.total
}

// Equal reports whether a and b hold the same words with the same counts.
// The order in which words were first seen does not matter.
func Equal(a, b *Table) bool {
	if a.Len() != b.Len() || a.Total() != b.Total() {
		return false
	}

	equal := true
	a.words.Range(func(w string, n int) bool {
		if m, ok := b.words.GetString(w); !ok || m != n {
			equal = false
		}
		return equal
	})
	return equal
}
