// Package workerpool implements the run_for contract: spawn N independent
// workers, each running a caller-supplied function under its own
// cancellation token, and flip that token if the function outruns a
// per-worker time budget. Unlike the teacher's persistent
// hwy/contrib/workerpool.Pool, RunFor starts fresh goroutines on every call
// and keeps none afterwards. The concern differs too: that pool parallelizes a single matrix op across
// worker-owned index ranges, while RunFor parallelizes N independent
// long-running, individually-cancelable tasks (spec.md 4.10).
package workerpool

import (
	"context"
	"fmt"
	"time"

	"github.com/aocsolver/qumo"
)

// Result is one worker's outcome: its return value, or the error it
// returned (including context.DeadlineExceeded-style cancellation surfaced
// by the caller's fn, if it chooses to check ctx.Err() and return it).
type Result[T any] struct {
	Value T
	Err   error
}

// RunFor spawns threads parallel workers, each invoking fn with its own
// context.Context derived from ctx. A per-worker watchdog cancels that
// context after timeout if fn has not returned by then; fn is expected to
// check ctx cooperatively at batch boundaries (spec.md 5, "the sampler is
// the only suspension point"). RunFor blocks until every worker returns and
// reports ErrInvalidTimeout immediately if timeout is under one second.
func RunFor[T any](ctx context.Context, threads int, timeout time.Duration, fn func(ctx context.Context, worker int) (T, error)) ([]Result[T], error) {
	if timeout < time.Second {
		return nil, fmt.Errorf("%w: workerpool.RunFor: timeout=%v", qumo.ErrInvalidTimeout, timeout)
	}
	if threads < 1 {
		threads = 1
	}

	results := make([]Result[T], threads)
	done := make(chan int, threads)

	for w := 0; w < threads; w++ {
		go func(worker int) {
			wctx, cancel := context.WithCancel(ctx)
			watchdog := time.AfterFunc(timeout, cancel)
			defer watchdog.Stop()
			defer cancel()

			v, err := fn(wctx, worker)
			results[worker] = Result[T]{Value: v, Err: err}
			done <- worker
		}(w)
	}

	for i := 0; i < threads; i++ {
		<-done
	}

	for _, r := range results {
		if r.Err != nil {
			return results, r.Err
		}
	}
	return results, nil
}
