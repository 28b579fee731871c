package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// Parallel applies fn to each value concurrently with up to n workers.
// Order is NOT preserved, so downstream stages must not depend on it.
// n <= 0 uses runtime.GOMAXPROCS(0) workers. The first error cancels the
// remaining workers and is yielded to the consumer.
func Parallel[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			source := p.create(ctx)
			workerCtx, cancel := context.WithCancel(ctx)
			in := make(chan I, n)
			out := make(chan result[O], n)

			go feed(workerCtx, source, in, out)

			var wg sync.WaitGroup
			for range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					work(workerCtx, cancel, in, out, fn)
				}()
			}

			go func() {
				wg.Wait()
				close(out)
			}()

			return &channelIter[O]{
				ch: out,
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}

// feed pulls from source into in until the source is exhausted, fails, or
// ctx is cancelled. Source errors are forwarded to out.
func feed[I, O any](ctx context.Context, source Iterator[I], in chan<- I, out chan<- result[O]) {
	defer close(in)
	for {
		val, ok, err := source.Next(ctx)
		if err != nil {
			select {
			case out <- result[O]{err: err}:
			case <-ctx.Done():
			}
			return
		}
		if !ok {
			return
		}
		select {
		case in <- val:
		case <-ctx.Done():
			return
		}
	}
}

func work[I, O any](ctx context.Context, cancel context.CancelFunc, in <-chan I, out chan<- result[O], fn func(context.Context, I) (O, error)) {
	for val := range in {
		o, err := fn(ctx, val)
		if err != nil {
			select {
			case out <- result[O]{err: err}:
			case <-ctx.Done():
			}
			cancel()
			return
		}
		select {
		case out <- result[O]{val: o, ok: true}:
		case <-ctx.Done():
			return
		}
	}
}
