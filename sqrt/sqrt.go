// Package sqrt computes square roots four ways: direct guess improvement,
// the same improvement driven by a trampoline, average damping of
// y -> x/y, and Newton's method on y -> y² - x.
package sqrt

import (
	"context"
	"math"
	"strconv"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/solver"
	"github.com/kbukum/numkit/trampoline"
)

// Epsilon is the tolerance on |guess² - x| used by Recursive and TailRecursive.
// Above about 1e11 the tolerance grows with x so that it stays reachable in
// float64.
const Epsilon = 0.001

// InitialGuess is where every method starts.
const InitialGuess = 1.0

// roundoff bounds |guess² - x| / x for the float64 guess nearest √x, with a
// margin of a few ulps.
const roundoff = 1e-14

// ulp1 is the spacing of float64 values just above 1.
const ulp1 = 0x1p-52

// goodEnough tests |guess² - x| written as guess·(guess - x/guess), which
// stays finite for x up to math.MaxFloat64.
func goodEnough(guess, x float64) bool {
	return math.Abs(guess-x/guess)*guess < math.Max(Epsilon, x*roundoff)
}

func improve(guess, x float64) float64 {
	return (guess + x/guess) / 2
}

func validate(x float64) error {
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.InvalidArgument("x", "must be a finite non-negative number")
	}
	return nil
}

// Recursive improves the guess by direct recursion. The recursion depth is
// logarithmic in x.
func Recursive(x float64) (float64, error) {
	if err := validate(x); err != nil {
		return 0, err
	}
	return iterate(InitialGuess, x), nil
}

// RecursiveContext is Recursive with a context check before it starts.
func RecursiveContext(ctx context.Context, x float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Cancelled("sqrt "+MethodRecursive, err)
	}
	return Recursive(x)
}

func iterate(guess, x float64) float64 {
	if goodEnough(guess, x) {
		return guess
	}
	return iterate(improve(guess, x), x)
}

// TailRecursive improves the guess through the trampoline.
func TailRecursive(x float64) (float64, error) {
	return TailRecursiveContext(context.Background(), x)
}

// TailRecursiveContext is TailRecursive with cancellation.
func TailRecursiveContext(ctx context.Context, x float64) (float64, error) {
	if err := validate(x); err != nil {
		return 0, err
	}
	return trampoline.RunContext(ctx, func() trampoline.Step[float64] {
		return step(InitialGuess, x)
	})
}

func step(guess, x float64) trampoline.Step[float64] {
	if goodEnough(guess, x) {
		return trampoline.Done(guess)
	}
	return trampoline.Continue(func() trampoline.Step[float64] {
		return step(improve(guess, x), x)
	})
}

// MaxAverageDampInput is the largest x AverageDamp accepts with solver
// tolerance epsilon. Beyond it neighbouring float64 values near √x are more
// than epsilon/8 apart and the fixed point test may never pass.
func MaxAverageDampInput(epsilon float64) float64 {
	r := epsilon / (8 * ulp1)
	return r * r
}

// MaxNewtonInput is the largest x Newton accepts with solver tolerance
// epsilon. The numerical derivative at InitialGuess steps by epsilon, so x
// must be fine enough in float64 for that step to register in y² - x.
func MaxNewtonInput(epsilon float64) float64 {
	return math.Min(epsilon*InitialGuess/(2*ulp1), MaxAverageDampInput(epsilon))
}

func checkRange(method string, x, limit float64) error {
	if x > limit {
		return errors.InvalidArgument("x", "too large for "+method+" at this solver epsilon, must be at most "+
			strconv.FormatFloat(limit, 'g', 6, 64)).WithDetail("max", limit)
	}
	return nil
}

// AverageDamp finds the fixed point of the average-damped y -> x/y.
func AverageDamp(s *solver.Solver, x float64) (float64, error) {
	return AverageDampContext(context.Background(), s, x)
}

// AverageDampContext is AverageDamp with cancellation.
func AverageDampContext(ctx context.Context, s *solver.Solver, x float64) (float64, error) {
	if err := validate(x); err != nil {
		return 0, err
	}
	if err := checkRange(MethodAverageDamp, x, MaxAverageDampInput(s.Epsilon())); err != nil {
		return 0, err
	}
	if x == 0 {
		return 0, nil
	}
	return s.FixedPointOfTransformContext(ctx, func(y float64) float64 { return x / y }, solver.AverageDamp, InitialGuess)
}

// Newton finds the root of y -> y² - x by Newton's method.
func Newton(s *solver.Solver, x float64) (float64, error) {
	return NewtonContext(context.Background(), s, x)
}

// NewtonContext is Newton with cancellation.
func NewtonContext(ctx context.Context, s *solver.Solver, x float64) (float64, error) {
	if err := validate(x); err != nil {
		return 0, err
	}
	if err := checkRange(MethodNewton, x, MaxNewtonInput(s.Epsilon())); err != nil {
		return 0, err
	}
	return s.NewtonsMethodContext(ctx, func(y float64) float64 { return y*y - x }, InitialGuess)
}

// Method names accepted by Compute.
const (
	MethodRecursive     = "recursive"
	MethodTailRecursive = "tail-recursive"
	MethodAverageDamp   = "average-damp"
	MethodNewton        = "newton"
)

// Methods lists the method names in display order.
var Methods = []string{MethodRecursive, MethodTailRecursive, MethodAverageDamp, MethodNewton}

// Compute dispatches to the named method.
func Compute(s *solver.Solver, method string, x float64) (float64, error) {
	return ComputeContext(context.Background(), s, method, x)
}

// ComputeContext dispatches to the Context variant of the named method.
func ComputeContext(ctx context.Context, s *solver.Solver, method string, x float64) (float64, error) {
	switch method {
	case MethodRecursive:
		return RecursiveContext(ctx, x)
	case MethodTailRecursive:
		return TailRecursiveContext(ctx, x)
	case MethodAverageDamp:
		return AverageDampContext(ctx, s, x)
	case MethodNewton:
		return NewtonContext(ctx, s, x)
	default:
		return 0, errors.InvalidArgument("method", "unknown square root method "+method)
	}
}
