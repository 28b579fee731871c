// Package errors provides the coded error type shared by numkit packages.
//
// Every failure that crosses a package boundary is an *AppError carrying a
// machine-readable ErrorCode. Callers branch on the code with IsCode rather
// than on message text:
//
//	root, err := solver.HalfIntervalMethod(f, a, b)
//	if errors.IsCode(err, errors.ErrCodeInvalidArgument) {
//	    // endpoints do not bracket a sign change
//	}
package errors
