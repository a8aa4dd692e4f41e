// Package lookup provides a hash table with string keys that can be
// probed with a []byte view of the key, without converting it to a
// string first. A key is only copied when it is inserted.
package lookup

import (
	"github.com/cespare/xxhash/v2"
)

const minBuckets = 8

// Table maps string keys to values of type V.
// Entries are kept in insertion order.
// The zero value is an empty table ready for use.
// Table is not safe for concurrent use.
type Table[V any] struct {
	entries []entry[V]
	// index+1 into entries, 0 means the bucket is empty
	buckets []int32
	mask    uint64

	keyAllocs int
}

type entry[V any] struct {
	hash uint64
	key  string
	val  V
}

// New returns a table with room for hint entries before it has to grow.
func New[V any](hint int) *Table[V] {
	t := &Table[V]{}
	t.init(hint)
	return t
}

func (t *Table[V]) init(hint int) {
	n := minBuckets
	for n/4*3 < hint {
		n <<= 1
	}

	t.buckets = make([]int32, n)
	t.mask = uint64(n - 1)
	if hint > 0 {
		t.entries = make([]entry[V], 0, hint)
	}
}

func (t *Table[V]) find(h uint64, key []byte) (slot uint64, idx int) {
	slot = h & t.mask
	for {
		e := t.buckets[slot]
		if e == 0 {
			return slot, -1
		}
		ent := &t.entries[e-1]
		if ent.hash == h && ent.key == string(key) {
			return slot, int(e - 1)
		}
		slot = (slot + 1) & t.mask
	}
}

func (t *Table[V]) findString(h uint64, key string) (slot uint64, idx int) {
	slot = h & t.mask
	for {
		e := t.buckets[slot]
		if e == 0 {
			return slot, -1
		}
		ent := &t.entries[e-1]
		if ent.hash == h && ent.key == key {
			return slot, int(e - 1)
		}
		slot = (slot + 1) & t.mask
	}
}

// Get behaves like the map access `v, ok := t[string(key)]`,
// but does not allocate.
func (t *Table[V]) Get(key []byte) (v V, ok bool) {
	if len(t.buckets) == 0 {
		return
	}

	_, idx := t.find(xxhash.Sum64(key), key)
	if idx < 0 {
		return
	}
	return t.entries[idx].val, true
}

// GetString is like Get, but takes a string key.
func (t *Table[V]) GetString(key string) (v V, ok bool) {
	if len(t.buckets) == 0 {
		return
	}

	_, idx := t.findString(xxhash.Sum64String(key), key)
	if idx < 0 {
		return
	}
	return t.entries[idx].val, true
}

// Upsert returns a pointer to the value stored under key. If key was not
// in the table, an owned copy of key is inserted with the zero value of V
// and inserted is true. This is the only place the table copies a key.
//
// The pointer is only valid until the next insertion into the table.
func (t *Table[V]) Upsert(key []byte) (v *V, inserted bool) {
	if len(t.buckets) == 0 {
		t.init(0)
	}

	h := xxhash.Sum64(key)
	slot, idx := t.find(h, key)
	if idx >= 0 {
		return &t.entries[idx].val, false
	}

	if t.full() {
		t.grow()
		slot, _ = t.find(h, key)
	}

	t.keyAllocs++
	return t.insert(slot, h, string(key)), true
}

// UpsertString is like Upsert, but stores key itself instead of a copy,
// since strings are immutable.
func (t *Table[V]) UpsertString(key string) (v *V, inserted bool) {
	if len(t.buckets) == 0 {
		t.init(0)
	}

	h := xxhash.Sum64String(key)
	slot, idx := t.findString(h, key)
	if idx >= 0 {
		return &t.entries[idx].val, false
	}

	if t.full() {
		t.grow()
		slot, _ = t.findString(h, key)
	}

	return t.insert(slot, h, key), true
}

func (t *Table[V]) insert(slot, h uint64, key string) *V {
	t.entries = append(t.entries, entry[V]{
		hash: h,
		key:  key,
	})
	t.buckets[slot] = int32(len(t.entries))
	return &t.entries[len(t.entries)-1].val
}

// full reports whether one more entry would push the load factor past 3/4.
func (t *Table[V]) full() bool {
	return len(t.entries)+1 > len(t.buckets)/4*3
}

// grow doubles the bucket array. Stored hashes are reused,
// so no key is hashed or copied again.
func (t *Table[V]) grow() {
	n := len(t.buckets) * 2
	t.buckets = make([]int32, n)
	t.mask = uint64(n - 1)

	for i := range t.entries {
		slot := t.entries[i].hash & t.mask
		for t.buckets[slot] != 0 {
			slot = (slot + 1) & t.mask
		}
		t.buckets[slot] = int32(i + 1)
	}
}

// Len behaves like `len(t)`.
func (t *Table[_]) Len() int {
	return len(t.entries)
}

// KeyAllocs returns how many keys Upsert has copied since the table
// was created or last Reset.
func (t *Table[_]) KeyAllocs() int {
	return t.keyAllocs
}

// Reset removes every entry but keeps the memory of the bucket array and
// entry slice, so refilling the table with as many keys does not allocate
// anything except the keys themselves.
func (t *Table[V]) Reset() {
	clear(t.buckets)
	clear(t.entries)
	t.entries = t.entries[:0]
	t.keyAllocs = 0
}

// Range calls f for every key-value pair in insertion order.
// If f returns false, iteration stops early.
// The result of modifying the table while iterating over it is undefined.
func (t *Table[V]) Range(f func(key string, v V) bool) {
	for i := range t.entries {
		if !f(t.entries[i].key, t.entries[i].val) {
			return
		}
	}
}

// Iterator returns an iterator object starting at the first inserted entry.
// The usual idiom for using an iterator is:
//
//	i := t.Iterator()
//	for i.Next() {
//		k, v := i.Entry()
//		// do stuff with k and v ...
//	}
func (t *Table[V]) Iterator() Iterator[V] {
	return Iterator[V]{
		entries: t.entries,
		i:       -1,
	}
}

// Iterator is a table iterator object. See Table.Iterator.
type Iterator[V any] struct {
	entries []entry[V]
	i       int
}

// Next advances the iterator and returns whether there is anything
// to be read with Entry.
func (i *Iterator[V]) Next() bool {
	if i.i+1 >= len(i.entries) {
		i.i = len(i.entries)
		return false
	}
	i.i++
	return true
}

// Entry returns the current key and value of the iterator.
func (i *Iterator[V]) Entry() (key string, v V) {
	e := &i.entries[i.i]
	return e.key, e.val
}
