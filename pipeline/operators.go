package pipeline

import "context"

// Chunk groups consecutive values into slices of up to size elements.
// The last chunk may be shorter. size <= 0 defaults to 1.
func Chunk[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	if size <= 0 {
		size = 1
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}
}

// Reduce accumulates all values into a single result.
// The pipeline yields exactly one value: the final accumulator.
func Reduce[T, R any](p *Pipeline[T], init R, fn func(R, T) R) *Pipeline[R] {
	return &Pipeline[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &reduceIter[T, R]{source: p.create(ctx), acc: init, fn: fn}
		},
	}
}

// --- Iterator implementations ---

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false, nil
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }

type reduceIter[T, R any] struct {
	source Iterator[T]
	acc    R
	fn     func(R, T) R
	done   bool
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (result R, ok bool, err error) {
	if it.done {
		var zero R
		return zero, false, nil
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			var zero R
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.acc, true, nil
		}
		it.acc = it.fn(it.acc, val)
	}
}

func (it *reduceIter[T, R]) Close() error { return it.source.Close() }
