// Package series provides Sum and Product, the two folds fixed by an
// operator and its identity.
//
//	total := series.Sum.Solve(accumulate.Imperative, term, 1, next, 10000)
//	fact := series.Product.Imperative(func(x float64) float64 { return x }, 1, inc, 5)
package series

import (
	"context"

	"github.com/kbukum/numkit/accumulate"
)

// Series is a fold with a fixed combining operator and identity.
type Series struct {
	name     string
	combine  accumulate.Combiner
	identity float64
}

// New creates a Series. combine must be associative and commutative if the
// series is evaluated with accumulate.Parallel.
func New(name string, combine accumulate.Combiner, identity float64) *Series {
	return &Series{name: name, combine: combine, identity: identity}
}

var (
	// Sum adds terms, starting from 0.
	Sum = New("sum", func(a, b float64) float64 { return a + b }, 0)
	// Product multiplies terms, starting from 1.
	Product = New("product", func(a, b float64) float64 { return a * b }, 1)
)

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Identity returns the value of the series over an empty range.
func (s *Series) Identity() float64 { return s.identity }

// Solve evaluates the series over [start, end] with the given strategy.
func (s *Series) Solve(strategy accumulate.Strategy, term accumulate.Term, start float64, next accumulate.Next, end float64) float64 {
	return accumulate.Accumulate(strategy, s.combine, term, start, next, end, s.identity)
}

// SolveContext is Solve with cancellation for strategies that support it.
func (s *Series) SolveContext(ctx context.Context, strategy accumulate.Strategy, term accumulate.Term, start float64, next accumulate.Next, end float64) (float64, error) {
	return accumulate.AccumulateContext(ctx, strategy, s.combine, term, start, next, end, s.identity)
}

// Recursive evaluates the series with accumulate.Recursive.
func (s *Series) Recursive(term accumulate.Term, start float64, next accumulate.Next, end float64) float64 {
	return s.Solve(accumulate.Recursive, term, start, next, end)
}

// TailRecursive evaluates the series with accumulate.TailRecursive.
func (s *Series) TailRecursive(term accumulate.Term, start float64, next accumulate.Next, end float64) float64 {
	return s.Solve(accumulate.TailRecursive, term, start, next, end)
}

// Imperative evaluates the series with accumulate.Imperative.
func (s *Series) Imperative(term accumulate.Term, start float64, next accumulate.Next, end float64) float64 {
	return s.Solve(accumulate.Imperative, term, start, next, end)
}

// Parallel evaluates the series with a default accumulate.Parallel.
func (s *Series) Parallel(term accumulate.Term, start float64, next accumulate.Next, end float64) float64 {
	return s.Solve(accumulate.Parallel{}, term, start, next, end)
}
