// Package solver finds roots and fixed points of real functions.
//
// HalfIntervalMethod brackets a root between two points of opposite sign and
// bisects. FixedPoint iterates f until consecutive guesses agree within the
// solver's epsilon. Transforms turn a function into one whose fixed point is
// the value of interest, and FixedPointOfTransform composes the two:
//
//	// square root of x by average damping of y -> x/y
//	root, err := solver.FixedPointOfTransform(
//	    func(y float64) float64 { return x / y }, solver.AverageDamp, 1.0)
//
//	// the same root by Newton's method on y -> y*y - x
//	s := solver.New(solver.DefaultConfig())
//	root, err = s.FixedPointOfTransform(
//	    func(y float64) float64 { return y*y - x }, s.NewtonsTransform, 1.0)
//
// Precision is a property of a Solver rather than a global: the same
// epsilon is used for convergence, bisection width and the step of the
// numerical derivative. Package-level functions use a default Solver.
//
// FixedPoint makes no convergence guarantee. A guess that overflows to an
// infinity or NaN is reported as NOT_CONVERGED, but a function that wanders
// without diverging iterates forever unless MaxIterations is positive or the
// Context variant is used with a deadline.
package solver
