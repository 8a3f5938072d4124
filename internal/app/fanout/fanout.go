// Package fanout runs one function over a slice with bounded parallelism.
// The broadcaster uses it to hand each snapshot to every webhook target.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Each calls fn for every item, at most limit at a time (limit < 1 means
// 1), and returns the errors in item order. Items are started in order.
// Once ctx ends no further calls start and the remaining items get
// ctx.Err(); calls already running are left to observe ctx themselves.
func Each[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) []error {
	errs := make([]error, len(items))
	sem := semaphore.NewWeighted(int64(max(limit, 1)))

	var wg sync.WaitGroup
	for i, item := range items {
		if err := acquire(ctx, sem); err != nil {
			for j := i; j < len(items); j++ {
				errs[j] = err
			}
			break
		}
		wg.Go(func() {
			defer sem.Release(1)
			errs[i] = fn(ctx, item)
		})
	}
	wg.Wait()

	return errs
}

func acquire(ctx context.Context, sem *semaphore.Weighted) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return sem.Acquire(ctx, 1)
}
