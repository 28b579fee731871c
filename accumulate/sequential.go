package accumulate

import "github.com/kbukum/numkit/trampoline"

type recursive struct{}

// Recursive folds by plain recursion:
// combine(term(start), Recursive(next(start))). Stack depth is proportional
// to the length of the range.
var Recursive Strategy = recursive{}

func (recursive) Name() string { return NameRecursive }

func (r recursive) Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	if start > end {
		return identity
	}
	return combine(term(start), r.Accumulate(combine, term, next(start), next, end, identity))
}

type tailRecursive struct{}

// TailRecursive folds accumulator-first, each recursive call deferred to the
// trampoline so the stack does not grow.
var TailRecursive Strategy = tailRecursive{}

func (tailRecursive) Name() string { return NameTailRecursive }

func (tailRecursive) Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	return trampoline.Run(func() trampoline.Step[float64] {
		return tailStep(combine, term, start, next, end, identity)
	})
}

func tailStep(combine Combiner, term Term, start float64, next Next, end float64, acc float64) trampoline.Step[float64] {
	if start > end {
		return trampoline.Done(acc)
	}
	return trampoline.Continue(func() trampoline.Step[float64] {
		return tailStep(combine, term, next(start), next, end, combine(acc, term(start)))
	})
}

type imperative struct{}

// Imperative folds with a loop in the same order as TailRecursive.
var Imperative Strategy = imperative{}

func (imperative) Name() string { return NameImperative }

func (imperative) Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	acc := identity
	for i := start; i <= end; i = next(i) {
		acc = combine(acc, term(i))
	}
	return acc
}
