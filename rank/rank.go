// Package rank returns the most- or least-frequent words of a frequency table.
package rank

import (
	"container/heap"

	"go.lepak.sg/wordfreq/freq"
)

// entries is used to implement a max-heap.
type entries []freq.Entry

var _ heap.Interface = (*entries)(nil)

func (e entries) Len() int {
	return len(e)
}

func (e entries) Less(i, j int) bool {
	// yes, the sign is correct
	// see container/heap PriorityQueue example
	if e[i].Count != e[j].Count {
		return e[i].Count > e[j].Count
	}
	return e[i].Word < e[j].Word
}

func (e entries) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

func (e *entries) Push(x any) {
	*e = append(*e, x.(freq.Entry))
}

func (e *entries) Pop() any {
	x := (*e)[len(*e)-1]
	*e = (*e)[:len(*e)-1]
	return x
}

// entriesMin is used to implement a min-heap.
type entriesMin struct {
	entries
}

var _ heap.Interface = (*entriesMin)(nil)

func (e entriesMin) Less(i, j int) bool {
	if e.entries[i].Count != e.entries[j].Count {
		return e.entries[i].Count < e.entries[j].Count
	}
	return e.entries[i].Word < e.entries[j].Word
}

// heapk creates either a min- or max-heap from the entries of the
// table, then pops off k entries and returns them.
func heapk(t *freq.Table, k int, max bool) []freq.Entry {
	if k < 0 {
		panic("k is negative")
	}
	if k > t.Len() {
		k = t.Len()
	}
	if k == 0 {
		return []freq.Entry{}
	}

	var hptr heap.Interface
	if max {
		h := entries(t.Entries())
		hptr = &h
	} else {
		h := entriesMin{entries: t.Entries()}
		hptr = &h
	}

	heap.Init(hptr)

	out := make([]freq.Entry, k)
	for i := 0; i < k; i++ {
		out[i] = heap.Pop(hptr).(freq.Entry)
	}

	return out
}

// Top returns the k most-frequent words of the table, in descending
// order of count. Words with the same count are ordered alphabetically.
// If k is larger than the number of words, every word is returned.
// Top panics if k is negative.
func Top(t *freq.Table, k int) []freq.Entry {
	return heapk(t, k, true)
}

// Bottom returns the k least-frequent words of the table, in ascending
// order of count. Words with the same count are ordered alphabetically.
func Bottom(t *freq.Table, k int) []freq.Entry {
	return heapk(t, k, false)
}
