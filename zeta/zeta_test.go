package zeta

import (
	"context"
	"math"
	"testing"

	"github.com/kbukum/numkit/accumulate"
)

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{}
	for _, p := range []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97} {
		primes[p] = true
	}
	for n := -3; n <= 100; n++ {
		if got := IsPrime(n); got != primes[n] {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, primes[n])
		}
	}
	if !IsPrime(997) || IsPrime(999) || IsPrime(1001) {
		t.Error("IsPrime misclassifies numbers near 1000")
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 2},
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{7, 11},
		{7.9, 11},
		{89, 97},
		{997, 1009},
	}
	for _, tt := range tests {
		if got := NextPrime(tt.in); got != tt.want {
			t.Errorf("NextPrime(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSumSolve_ApproachesZeta2(t *testing.T) {
	want := math.Pi * math.Pi / 6
	if got := SumSolve(2); math.Abs(got-want) > 0.002 {
		t.Errorf("got %v, want approximately %v", got, want)
	}
}

func TestProductSolve_ApproachesZeta2(t *testing.T) {
	want := math.Pi * math.Pi / 6
	if got := ProductSolve(2); math.Abs(got-want) > 0.002 {
		t.Errorf("got %v, want approximately %v", got, want)
	}
}

func TestStrategiesAgree(t *testing.T) {
	for _, s := range []float64{2, 3, 4} {
		sum := SumSolve(s)
		product := ProductSolve(s)
		for _, strategy := range accumulate.Strategies() {
			if got := SumSolveWith(strategy, s); math.Abs(got-sum) > 1e-6 {
				t.Errorf("%s sum(%v) = %v, want %v", strategy.Name(), s, got, sum)
			}
			if got := ProductSolveWith(strategy, s); math.Abs(got-product) > 1e-6 {
				t.Errorf("%s product(%v) = %v, want %v", strategy.Name(), s, got, product)
			}
		}
		if math.Abs(sum-product) > 0.002 {
			t.Errorf("s=%v: series %v and product %v disagree", s, sum, product)
		}
	}
}

func TestSolveContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SumSolveContext(ctx, accumulate.Parallel{}, 2); err == nil {
		t.Error("expected error for cancelled sum")
	}
	if _, err := ProductSolveContext(ctx, accumulate.TailRecursive, 2); err == nil {
		t.Error("expected error for cancelled product")
	}
}
