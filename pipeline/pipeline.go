package pipeline

import (
	"context"
	"fmt"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
// No work happens until values are pulled via Collect or Single.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// result carries a value or error through a channel.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// channelIter reads values from a channel. Used by concurrent operators.
type channelIter[T any] struct {
	ch     <-chan result[T]
	closer func() error
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	select {
	case r, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return r.val, r.ok, r.err
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}

// --- Constructors ---

// FromSlice creates a pipeline from a slice of values.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Generate creates a pipeline yielding seed, step(seed), step(step(seed)), ...
// for as long as more returns true. The step function is called lazily, one
// value ahead of the consumer at most.
func Generate[T any](seed T, step func(T) T, more func(T) bool) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{current: seed, step: step, more: more}
		},
	}
}

// --- Terminals ---

// Collect runs the pipeline and returns all values as a slice.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	var out []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// Single runs the pipeline and returns its only value. It fails if the
// pipeline yields nothing; additional values are not pulled.
func Single[T any](ctx context.Context, p *Pipeline[T]) (T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	val, ok, err := iter.Next(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, fmt.Errorf("pipeline: no value produced")
	}
	return val, nil
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	current T
	step    func(T) T
	more    func(T) bool
	started bool
	done    bool
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	if it.started {
		it.current = it.step(it.current)
	}
	it.started = true
	if !it.more(it.current) {
		it.done = true
		return zero, false, nil
	}
	return it.current, true, nil
}

func (it *generateIter[T]) Close() error { return nil }
