package accumulate

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/kbukum/numkit/errors"
)

const tolerance = 1e-6

func add(a, b float64) float64 { return a + b }
func mul(a, b float64) float64 { return a * b }
func sub(a, b float64) float64 { return a - b }
func identity(x float64) float64 { return x }
func inc(x float64) float64 { return x + 1 }
func square(x float64) float64 { return x * x }
func piTerm(x float64) float64 { return 1.0 / (x * (x + 2)) }
func stepFour(x float64) float64 { return x + 4 }
func doubling(x float64) float64 { return 2 * x }
func reciprocal(x float64) float64 { return 1 / x }
func halfStep(x float64) float64 { return x + 0.5 }
func negativeTerm(x float64) float64 { return -x }

func allStrategies() []Strategy {
	return []Strategy{Recursive, TailRecursive, Imperative, Parallel{Workers: 4, ChunkSize: 3}}
}

func TestSum_KnownValues(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"single term", 1, 1, 1},
		{"two terms", 1, 2, 3},
		{"symmetric range", -5, 5, 0},
		{"one to ten", 1, 10, 55},
	}
	for _, s := range allStrategies() {
		for _, tc := range tests {
			t.Run(s.Name()+"/"+tc.name, func(t *testing.T) {
				got := Accumulate(s, add, identity, tc.start, inc, tc.end, 0)
				if got != tc.want {
					t.Errorf("got %v, want %v", got, tc.want)
				}
			})
		}
	}
}

func TestProduct_Factorial(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Name(), func(t *testing.T) {
			if got := Accumulate(s, mul, identity, 1, inc, 5, 1); got != 120 {
				t.Errorf("got %v, want 120", got)
			}
		})
	}
}

func TestEmptyRange_ReturnsIdentity(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Name(), func(t *testing.T) {
			if got := Accumulate(s, add, identity, 10, inc, 1, 0); got != 0 {
				t.Errorf("sum: got %v, want 0", got)
			}
			if got := Accumulate(s, mul, identity, 10, inc, 1, 1); got != 1 {
				t.Errorf("product: got %v, want 1", got)
			}
			if got := Accumulate(s, sub, identity, 3, inc, 2, 42); got != 42 {
				t.Errorf("custom identity: got %v, want 42", got)
			}
		})
	}
}

func TestStrategies_Agree(t *testing.T) {
	tests := []struct {
		name       string
		combine    Combiner
		term       Term
		start, end float64
		next       Next
		identity   float64
	}{
		{"sum of squares", add, square, 1, 200, inc, 0},
		{"pi series", add, piTerm, 1, 10000, stepFour, 0},
		{"fractional stride", add, reciprocal, 1, 50, halfStep, 0},
		{"geometric stepper", add, reciprocal, 1, 1 << 20, doubling, 0},
		{"negative terms", add, negativeTerm, -20, 20, inc, 0},
		{"small product", mul, func(x float64) float64 { return 1 + 1/(x*x) }, 1, 100, inc, 1},
		{"max", math.Max, func(x float64) float64 { return math.Sin(x) }, 0, 500, inc, math.Inf(-1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := Accumulate(Imperative, tc.combine, tc.term, tc.start, tc.next, tc.end, tc.identity)
			for _, s := range allStrategies() {
				got := Accumulate(s, tc.combine, tc.term, tc.start, tc.next, tc.end, tc.identity)
				if math.Abs(got-want) > tolerance {
					t.Errorf("%s: got %v, want %v", s.Name(), got, want)
				}
			}
		})
	}
}

func TestPiSeries_AllStrategies(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Name(), func(t *testing.T) {
			got := 8 * Accumulate(s, add, piTerm, 1, stepFour, 10000, 0)
			if math.Abs(got-math.Pi) > 0.01 {
				t.Errorf("got %v, want approximately %v", got, math.Pi)
			}
		})
	}
}

func TestAssociationOrder_Subtraction(t *testing.T) {
	// Recursive: 1 - (2 - (3 - 0)) = 2
	// accumulator-first: ((0 - 1) - 2) - 3 = -6
	rec := Accumulate(Recursive, sub, identity, 1, inc, 3, 0)
	if rec != 2 {
		t.Errorf("recursive: got %v, want 2", rec)
	}
	for _, s := range []Strategy{TailRecursive, Imperative} {
		if got := Accumulate(s, sub, identity, 1, inc, 3, 0); got != -6 {
			t.Errorf("%s: got %v, want -6", s.Name(), got)
		}
	}
}

func TestTailRecursive_LongRange(t *testing.T) {
	const n = 2_000_000
	got := Accumulate(TailRecursive, add, func(float64) float64 { return 1 }, 1, inc, n, 0)
	if got != n {
		t.Errorf("got %v, want %v", got, float64(n))
	}
}

func TestParallel_Defaults(t *testing.T) {
	got := Accumulate(Parallel{}, add, identity, 1, inc, 1000, 0)
	if got != 500500 {
		t.Errorf("got %v, want 500500", got)
	}
}

func TestStrategyFunc(t *testing.T) {
	calls := 0
	f := StrategyFunc(func(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
		calls++
		return Imperative.Accumulate(combine, term, start, next, end, identity)
	})
	if got := Accumulate(f, add, identity, 1, inc, 4, 0); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
	if calls != 1 || f.Name() != "func" {
		t.Errorf("unexpected adapter behavior: calls=%d name=%s", calls, f.Name())
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"recursive", NameRecursive},
		{"Tail-Recursive", NameTailRecursive},
		{"tail_recursive", NameTailRecursive},
		{" imperative ", NameImperative},
		{"PARALLEL", NameParallel},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			s, err := Lookup(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if s.Name() != tc.want {
				t.Errorf("got %s, want %s", s.Name(), tc.want)
			}
		})
	}

	if _, err := Lookup("quantum"); !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for unknown strategy, got %v", err)
	}
}

func TestNamesAndStrategies(t *testing.T) {
	names := Names()
	want := []string{NameImperative, NameParallel, NameRecursive, NameTailRecursive}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
	for i, s := range Strategies() {
		if s.Name() != want[i] {
			t.Errorf("strategies[%d] = %s, want %s", i, s.Name(), want[i])
		}
	}
}

func TestAccumulateContext(t *testing.T) {
	for _, s := range allStrategies() {
		t.Run(s.Name()+"/completes", func(t *testing.T) {
			got, err := AccumulateContext(context.Background(), s, add, identity, 1, inc, 10, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got != 55 {
				t.Errorf("got %v, want 55", got)
			}
		})
		t.Run(s.Name()+"/cancelled", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := AccumulateContext(ctx, s, add, identity, 1, inc, 10, 0)
			if !errors.IsCode(err, errors.ErrCodeCancelled) {
				t.Errorf("expected CANCELLED, got %v", err)
			}
		})
	}
}

func TestAccumulateContext_StopsNonTerminatingNext(t *testing.T) {
	stuck := func(x float64) float64 { return x } // never passes end
	for _, s := range []Strategy{TailRecursive, Imperative, Parallel{Workers: 2}} {
		t.Run(s.Name(), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			var calls atomic.Int64
			term := func(x float64) float64 {
				if calls.Add(1) == 5000 {
					cancel()
				}
				return x
			}
			_, err := AccumulateContext(ctx, s, add, term, 1, stuck, 2, 0)
			if !errors.IsCode(err, errors.ErrCodeCancelled) {
				t.Errorf("expected CANCELLED, got %v", err)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Strategy != NameImperative || cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	s, err := Config{Strategy: "parallel", Workers: 3, ChunkSize: 10}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	p, ok := s.(Parallel)
	if !ok || p.Workers != 3 || p.ChunkSize != 10 {
		t.Errorf("expected tuned Parallel, got %#v", s)
	}

	if _, err := (Config{Strategy: "bogus"}).Resolve(); err == nil {
		t.Error("expected error for unknown strategy")
	}

	base := Config{Strategy: NameImperative, Workers: 2, ChunkSize: 8}
	tuned := base.WithStrategy(NameParallel)
	if base.Strategy != NameImperative {
		t.Error("WithStrategy must not modify the receiver")
	}
	if s, _ := tuned.Resolve(); s != (Parallel{Workers: 2, ChunkSize: 8}) {
		t.Errorf("got %#v", s)
	}
}
