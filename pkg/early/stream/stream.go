package stream

import (
	"context"
	"sync"

	"github.com/PrestonFrom/early-returns/pkg/early"
)

// Emit sends the given values on the returned channel and closes it. It
// stops early when ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains in into a slice. It stops early when ctx is done, returning
// whatever was received so far.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-in:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// pump is the stage worker loop: it extracts each container into its value,
// forwards good values, and on a bad variant either stops (break) or drops
// it (continue).
func pump[C, T any](ctx context.Context, in <-chan C, out chan<- T,
	extract func(C) (T, bool), stopOnBad bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-in:
			if !ok {
				return
			}

			v, good := extract(c)
			if !good {
				if stopOnBad {
					return
				}
				continue
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}
}

func run[C, T any](ctx context.Context, in <-chan C,
	extract func(C) (T, bool), stopOnBad bool, workers int) <-chan T {

	if workers < 1 {
		workers = 1
	}

	out := make(chan T)
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go pump(ctx, in, out, extract, stopOnBad, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// WhileSome forwards present values and stops at the first None. Ordering
// matters for break semantics, so the stage runs a single worker.
func WhileSome[T any](ctx context.Context, in <-chan early.Option[T]) <-chan T {
	return run(ctx, in, early.Option[T].Get, true, 1)
}

// WhileOk forwards success values and stops at the first failure, discarding
// its error payload. The stage runs a single worker.
func WhileOk[T any](ctx context.Context, in <-chan early.Result[T]) <-chan T {
	return run(ctx, in, early.Result[T].Get, true, 1)
}

// SkipNone forwards present values and drops None. Dropping is
// order-independent, so the stage fans out across the given worker count.
func SkipNone[T any](ctx context.Context, in <-chan early.Option[T], workers int) <-chan T {
	return run(ctx, in, early.Option[T].Get, false, workers)
}

// SkipFail forwards success values and drops failures, discarding their
// error payloads. The stage fans out across the given worker count.
func SkipFail[T any](ctx context.Context, in <-chan early.Result[T], workers int) <-chan T {
	return run(ctx, in, early.Result[T].Get, false, workers)
}
