// Package accumulate folds a sequence of terms into a single value.
//
// A sequence is described by a start index, a next function producing the
// following index, and an inclusive end bound. Each index is mapped through
// a term function and the results are combined with a binary operator,
// starting from an identity value that is also the result for an empty
// range (start > end):
//
//	combine(term(start), combine(term(next(start)), ... combine(term(last), identity)))
//
// The fold is evaluated by a Strategy. Four are provided and are
// interchangeable for associative, commutative operators:
//
//   - Recursive: naive recursion, stack depth grows with the range
//   - TailRecursive: accumulator recursion driven by the trampoline package
//   - Imperative: a plain loop
//   - Parallel: chunked fold across worker goroutines
//
// Recursive combines the innermost term last, whereas TailRecursive and
// Imperative fold accumulator-first. For non-associative operators such as
// subtraction the results differ. Parallel additionally reorders partial
// results and must only be used with associative, commutative operators.
//
// The caller guarantees that next eventually passes end; a next that never
// does so makes every strategy run forever.
package accumulate
