// Package parallel maps slices in parallel with a bounded number of workers.
package parallel

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Map maps a list of ~[]T to []R using a provided map function f.
// It does this in parallel with a maximum of inflight workers.
// If inflight < 1, every item gets its own worker.
//
// Context cancellation: If the context is canceled, Map will
// immediately stop mapping any new items, wait for workers running to exit,
// then return the context error. Items that were never mapped are left
// as the zero value of R. Once every item has been handed to a worker,
// cancellation no longer matters and the complete result is returned.
func Map[S ~[]T, T, R any](
	ctx context.Context, list S, f func(int, T) R, inflight int,
) (result []R, err error) {
	result = make([]R, len(list))
	if len(list) == 0 {
		return result, ctx.Err()
	}
	if inflight < 1 || inflight > len(list) {
		inflight = len(list)
	}

	sema := semaphore.NewWeighted(int64(inflight))

	for i, v := range list {
		// stop dispatching as soon as ctx is done
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sema.Acquire(ctx, 1); err != nil {
			break
		}

		go func(i int, v T) {
			defer sema.Release(1)
			result[i] = f(i, v)
		}(i, v)
	}

	// Wait for every worker. This must not use ctx: once it is done,
	// Acquire would fail immediately instead of waiting.
	_ = sema.Acquire(context.Background(), int64(inflight))

	return
}
