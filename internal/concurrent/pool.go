package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Chunks splits the range [0,n) into at most `workers` contiguous chunks and runs exec on each
// chunk in its own go routine.
// Every index belongs to exactly one chunk, so exec can write index-owned state without locking.
// A non-positive workers value uses one worker per CPU.
// The first error cancels the context handed to the remaining chunks.
func Chunks(ctx context.Context, n, workers int, exec func(from, to int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for from := 0; from < n; from += size {
		from, to := from, min(from+size, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return exec(from, to)
		})
	}
	return g.Wait()
}
