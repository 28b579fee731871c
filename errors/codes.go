package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a precondition on the arguments was violated.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidConfig indicates the loaded configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Evaluation errors
const (
	// ErrCodeNotConverged indicates an iteration hit its safety cap before converging.
	ErrCodeNotConverged ErrorCode = "NOT_CONVERGED"
	// ErrCodeCancelled indicates the evaluation was cancelled through its context.
	ErrCodeCancelled ErrorCode = "CANCELLED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps error codes to process exit statuses used by the CLI.
var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidArgument: 2,
	ErrCodeInvalidConfig:   3,
	ErrCodeNotConverged:    4,
	ErrCodeCancelled:       5,
	ErrCodeInternal:        1,
}

// ExitCode returns the process exit status for the code. Unknown codes map to 1.
func ExitCode(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return 1
}
