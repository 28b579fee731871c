// Package zeta approximates the Riemann zeta function two ways: the
// Dirichlet series Σ n^-s and the Euler product Π 1/(1 - p^-s) over primes.
package zeta

import (
	"context"
	"math"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/series"
)

// Limit is the last index (or prime bound) included in the approximations.
const Limit = 1000.0

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than x.
func NextPrime(x float64) float64 {
	n := int(x)
	if n < 1 {
		n = 1
	}
	for {
		n++
		if IsPrime(n) {
			return float64(n)
		}
	}
}

func sumTerm(s float64) accumulate.Term {
	return func(n float64) float64 { return 1 / math.Pow(n, s) }
}

func productTerm(s float64) accumulate.Term {
	return func(p float64) float64 { return 1 / (1 - math.Pow(p, -s)) }
}

func increment(n float64) float64 { return n + 1 }

// SumSolve evaluates Σ n^-s for n = 1..Limit imperatively.
func SumSolve(s float64) float64 {
	return SumSolveWith(accumulate.Imperative, s)
}

// SumSolveWith evaluates the series with the given strategy.
func SumSolveWith(strategy accumulate.Strategy, s float64) float64 {
	return series.Sum.Solve(strategy, sumTerm(s), 1, increment, Limit)
}

// ProductSolve evaluates Π 1/(1 - p^-s) over primes p ≤ Limit imperatively.
func ProductSolve(s float64) float64 {
	return ProductSolveWith(accumulate.Imperative, s)
}

// ProductSolveWith evaluates the Euler product with the given strategy.
func ProductSolveWith(strategy accumulate.Strategy, s float64) float64 {
	return series.Product.Solve(strategy, productTerm(s), 2, NextPrime, Limit)
}

// SumSolveContext is SumSolveWith with cancellation.
func SumSolveContext(ctx context.Context, strategy accumulate.Strategy, s float64) (float64, error) {
	return series.Sum.SolveContext(ctx, strategy, sumTerm(s), 1, increment, Limit)
}

// ProductSolveContext is ProductSolveWith with cancellation.
func ProductSolveContext(ctx context.Context, strategy accumulate.Strategy, s float64) (float64, error) {
	return series.Product.SolveContext(ctx, strategy, productTerm(s), 2, NextPrime, Limit)
}
