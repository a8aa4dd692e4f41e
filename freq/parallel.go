package freq

import (
	"context"

	"go.lepak.sg/wordfreq/parallel"
	"go.lepak.sg/wordfreq/words"
)

// CountParallel splits buf into up to shards pieces at word boundaries,
// counts each piece in its own goroutine, then merges the pieces in order.
// The result equals New(class, 0) followed by Count(buf), including the
// order in which words were first seen.
//
// If ctx is canceled before every piece has started counting, CountParallel
// returns the context error and no table. A cancel that comes later does not
// discard the pieces already being counted.
func CountParallel(
	ctx context.Context, buf []byte, class words.Class, shards int,
) (*Table, error) {
	pieces := split(buf, class, shards)

	tables, err := parallel.Map(ctx, pieces, func(_ int, piece []byte) *Table {
		t := New(class, 0)
		t.Count(piece)
		return t
	}, len(pieces))
	if err != nil {
		return nil, err
	}

	out := New(class, 0)
	for _, t := range tables {
		out.Merge(t)
	}
	return out, nil
}

// split cuts buf into at most n non-empty pieces of roughly equal size,
// without cutting through a word.
func split(buf []byte, class words.Class, n int) [][]byte {
	if n < 1 {
		n = 1
	}

	size := (len(buf) + n - 1) / n
	pieces := make([][]byte, 0, n)

	start := 0
	for start < len(buf) {
		end := words.Boundary(buf, class, start+size)
		pieces = append(pieces, buf[start:end])
		start = end
	}
	return pieces
}
