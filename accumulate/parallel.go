package accumulate

import (
	"context"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/pipeline"
)

// DefaultChunkSize is the number of indices a Parallel worker folds at once
// when ChunkSize is unset.
const DefaultChunkSize = 256

// Parallel folds the sequence across worker goroutines.
//
// The index sequence is produced by applying next from start while the index
// does not exceed end, so any increasing stepper is supported. Indices are
// grouped into chunks, each chunk is folded from identity by one worker, and
// the partial results are combined in arrival order. combine must therefore
// be associative and commutative; other operators give an unspecified result.
type Parallel struct {
	// Workers is the number of goroutines; <= 0 uses GOMAXPROCS.
	Workers int
	// ChunkSize is the number of indices per work item; <= 0 uses DefaultChunkSize.
	ChunkSize int
}

// Name returns "parallel".
func (Parallel) Name() string { return NameParallel }

// Accumulate folds without cancellation.
func (p Parallel) Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	// context.Background never cancels, so no error can surface here.
	v, _ := p.AccumulateContext(context.Background(), combine, term, start, next, end, identity)
	return v
}

// AccumulateContext folds, stopping early with a CANCELLED error once ctx is done.
func (p Parallel) AccumulateContext(ctx context.Context, combine Combiner, term Term, start float64, next Next, end float64, identity float64) (float64, error) {
	if start > end {
		return identity, nil
	}
	size := p.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	indices := pipeline.Generate[float64](start, next, func(x float64) bool { return x <= end })
	partials := pipeline.Parallel(pipeline.Chunk(indices, size), p.Workers,
		func(_ context.Context, chunk []float64) (float64, error) {
			acc := identity
			for _, x := range chunk {
				acc = combine(acc, term(x))
			}
			return acc, nil
		})
	total := pipeline.Reduce(partials, identity, func(acc, part float64) float64 {
		return combine(acc, part)
	})

	v, err := pipeline.Single(ctx, total)
	if err != nil {
		return identity, errors.Cancelled("parallel accumulate", err)
	}
	return v, nil
}
