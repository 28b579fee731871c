// Package piseries approximates π with the series
// 8 · Σ 1/(x(x+2)) for x = 1, 5, 9, ... up to Limit.
package piseries

import (
	"context"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/series"
)

const (
	// Start is the first index of the series.
	Start = 1.0
	// Stride is the distance between consecutive indices.
	Stride = 4.0
	// Limit is the last index included by Solve.
	Limit = 10000.0
)

// Term is 1/(x(x+2)).
func Term(x float64) float64 { return 1.0 / (x * (x + 2)) }

// Next advances the index by Stride.
func Next(x float64) float64 { return x + Stride }

// Solve evaluates the series up to Limit with the given strategy.
func Solve(strategy accumulate.Strategy) float64 {
	return SolveTo(strategy, Limit)
}

// SolveTo evaluates the series up to limit.
func SolveTo(strategy accumulate.Strategy, limit float64) float64 {
	return 8 * series.Sum.Solve(strategy, Term, Start, Next, limit)
}

// SolveContext is SolveTo with cancellation.
func SolveContext(ctx context.Context, strategy accumulate.Strategy, limit float64) (float64, error) {
	v, err := series.Sum.SolveContext(ctx, strategy, Term, Start, Next, limit)
	if err != nil {
		return 0, err
	}
	return 8 * v, nil
}
