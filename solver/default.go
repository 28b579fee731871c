package solver

var defaultSolver = New(DefaultConfig())

// Default returns the solver used by the package-level functions.
func Default() *Solver { return defaultSolver }

// HalfIntervalMethod calls Default().HalfIntervalMethod.
func HalfIntervalMethod(f Func, a, b float64) (float64, error) {
	return defaultSolver.HalfIntervalMethod(f, a, b)
}

// FixedPoint calls Default().FixedPoint.
func FixedPoint(f Func, guess float64) (float64, error) {
	return defaultSolver.FixedPoint(f, guess)
}

// Derivative calls Default().Derivative.
func Derivative(f Func) Func {
	return defaultSolver.Derivative(f)
}

// NewtonsTransform calls Default().NewtonsTransform.
func NewtonsTransform(f Func) Func {
	return defaultSolver.NewtonsTransform(f)
}

// FixedPointOfTransform calls Default().FixedPointOfTransform.
func FixedPointOfTransform(f Func, transform Transform, guess float64) (float64, error) {
	return defaultSolver.FixedPointOfTransform(f, transform, guess)
}

// NewtonsMethod calls Default().NewtonsMethod.
func NewtonsMethod(f Func, guess float64) (float64, error) {
	return defaultSolver.NewtonsMethod(f, guess)
}
