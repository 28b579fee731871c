// Package pipeline provides composable, pull-based operators used to fan
// sequence evaluation out over worker goroutines.
//
// Pipelines are lazy: no work happens until values are pulled via Collect
// or Single. Each stage pulls from the previous stage on demand, so a
// generated sequence is never materialized beyond the chunk being handed
// to a worker.
//
// # Operators
//
// Sources:
//
//   - FromSlice: yield the elements of a slice
//   - Generate: yield seed, step(seed), ... while a predicate holds
//
// Synchronous (single-goroutine):
//
//   - Chunk: group consecutive values into slices of a fixed size
//   - Reduce: fold all values into one result
//
// Concurrent (multi-goroutine):
//
//   - Parallel: apply a function on a worker pool (order NOT preserved)
//
// # Usage
//
//	indices := pipeline.Generate(1.0, func(x float64) float64 { return x + 1 },
//	    func(x float64) bool { return x <= 1000 })
//	partials := pipeline.Parallel(pipeline.Chunk(indices, 128), 4,
//	    func(_ context.Context, chunk []float64) (float64, error) {
//	        return sum(chunk), nil
//	    })
//	total, err := pipeline.Single(ctx, pipeline.Reduce(partials, 0.0, add))
package pipeline
