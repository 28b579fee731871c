package solver

import (
	"context"
	"math"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/logger"
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Transform maps a function to one whose fixed point is of interest.
type Transform func(f Func) Func

// Solver runs root-finding and fixed-point algorithms at a fixed precision.
// A Solver is immutable and safe for concurrent use.
type Solver struct {
	cfg Config
	log *logger.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger makes the solver log convergence details at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(s *Solver) { s.log = l.WithComponent("solver") }
}

// New creates a Solver. Unset config fields take their defaults.
func New(cfg Config, opts ...Option) *Solver {
	cfg.ApplyDefaults()
	s := &Solver{cfg: cfg, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// Epsilon returns the solver tolerance.
func (s *Solver) Epsilon() float64 { return s.cfg.Epsilon }

func (s *Solver) closeEnough(x, y float64) bool {
	return math.Abs(x-y) < s.cfg.Epsilon
}

func average(x, y float64) float64 { return (x + y) / 2 }

// checkEvery is how many iterations run between context checks.
const checkEvery = 1024

// HalfIntervalMethod finds a root of f between a and b by bisection.
// f(a) and f(b) must be strictly of opposite sign; otherwise an
// INVALID_ARGUMENT error is returned before any search is done.
func (s *Solver) HalfIntervalMethod(f Func, a, b float64) (float64, error) {
	return s.HalfIntervalMethodContext(context.Background(), f, a, b)
}

// HalfIntervalMethodContext is HalfIntervalMethod with cancellation.
func (s *Solver) HalfIntervalMethodContext(ctx context.Context, f Func, a, b float64) (float64, error) {
	fa, fb := f(a), f(b)
	switch {
	case fa < 0 && fb > 0:
		return s.search(ctx, f, a, b)
	case fb < 0 && fa > 0:
		return s.search(ctx, f, b, a)
	default:
		return 0, errors.InvalidArgument("a, b", "f(a) and f(b) must have opposite signs").
			WithDetails(map[string]any{"a": a, "b": b, "f(a)": fa, "f(b)": fb})
	}
}

// search bisects [neg, pos] where f(neg) < 0 < f(pos). The points need not be
// ordered on the real line.
func (s *Solver) search(ctx context.Context, f Func, neg, pos float64) (float64, error) {
	for steps := 0; ; steps++ {
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return average(neg, pos), errors.Cancelled("half interval method", err).WithDetail("iterations", steps)
			}
		}
		mid := average(neg, pos)
		if s.closeEnough(neg, pos) || mid == neg || mid == pos {
			s.log.Debug("bisection converged", logger.Fields(logger.FieldIterations, steps, logger.FieldValue, mid))
			return mid, nil
		}
		switch v := f(mid); {
		case v > 0:
			pos = mid
		case v < 0:
			neg = mid
		default:
			s.log.Debug("bisection hit exact root", logger.Fields(logger.FieldIterations, steps+1, logger.FieldValue, mid))
			return mid, nil
		}
	}
}

// FixedPoint iterates guess = f(guess) until two consecutive guesses differ
// by less than epsilon and returns the last one. A guess that becomes NaN or
// infinite ends the iteration with NOT_CONVERGED, as does exceeding a
// positive MaxIterations.
func (s *Solver) FixedPoint(f Func, guess float64) (float64, error) {
	return s.FixedPointContext(context.Background(), f, guess)
}

// FixedPointContext is FixedPoint with cancellation.
func (s *Solver) FixedPointContext(ctx context.Context, f Func, guess float64) (float64, error) {
	for i := 1; ; i++ {
		if (i-1)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return guess, errors.Cancelled("fixed point", err).WithDetail("iterations", i-1)
			}
		}
		next := f(guess)
		if s.closeEnough(guess, next) {
			s.log.Debug("fixed point converged", logger.Fields(logger.FieldIterations, i, logger.FieldValue, next))
			return next, nil
		}
		if math.IsNaN(next) || math.IsInf(next, 0) || (s.cfg.MaxIterations > 0 && i >= s.cfg.MaxIterations) {
			err := errors.NotConverged("fixed point", i, next)
			s.log.Debug("fixed point gave up", logger.ErrorFields("fixed_point", err))
			return next, err
		}
		guess = next
	}
}

// AverageDamp returns x -> (x + f(x)) / 2.
func AverageDamp(f Func) Func {
	return func(x float64) float64 { return average(x, f(x)) }
}

// Derivative returns the forward difference (f(x+dx) - f(x)) / dx with dx
// equal to the solver epsilon.
func (s *Solver) Derivative(f Func) Func {
	dx := s.cfg.Epsilon
	return func(x float64) float64 { return (f(x+dx) - f(x)) / dx }
}

// NewtonsTransform returns x -> x - f(x) / Df(x). Its fixed points are the
// roots of f.
func (s *Solver) NewtonsTransform(f Func) Func {
	df := s.Derivative(f)
	return func(x float64) float64 { return x - f(x)/df(x) }
}

// FixedPointOfTransform returns FixedPoint(transform(f), guess).
func (s *Solver) FixedPointOfTransform(f Func, transform Transform, guess float64) (float64, error) {
	return s.FixedPoint(transform(f), guess)
}

// FixedPointOfTransformContext is FixedPointOfTransform with cancellation.
func (s *Solver) FixedPointOfTransformContext(ctx context.Context, f Func, transform Transform, guess float64) (float64, error) {
	return s.FixedPointContext(ctx, transform(f), guess)
}

// NewtonsMethod finds a root of f starting from guess.
func (s *Solver) NewtonsMethod(f Func, guess float64) (float64, error) {
	return s.FixedPointOfTransform(f, s.NewtonsTransform, guess)
}

// NewtonsMethodContext is NewtonsMethod with cancellation.
func (s *Solver) NewtonsMethodContext(ctx context.Context, f Func, guess float64) (float64, error) {
	return s.FixedPointOfTransformContext(ctx, f, s.NewtonsTransform, guess)
}
