package accumulate

import (
	"context"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/trampoline"
)

// ContextStrategy is implemented by strategies that can stop early when a
// context is cancelled.
type ContextStrategy interface {
	Strategy
	AccumulateContext(ctx context.Context, combine Combiner, term Term, start float64, next Next, end float64, identity float64) (float64, error)
}

// AccumulateContext evaluates the fold, honoring ctx when the strategy
// supports it. Strategies without context support are checked once before
// they start.
func AccumulateContext(ctx context.Context, strategy Strategy, combine Combiner, term Term, start float64, next Next, end float64, identity float64) (float64, error) {
	if cs, ok := strategy.(ContextStrategy); ok {
		return cs.AccumulateContext(ctx, combine, term, start, next, end, identity)
	}
	if err := ctx.Err(); err != nil {
		return identity, errors.Cancelled(strategy.Name()+" accumulate", err)
	}
	return strategy.Accumulate(combine, term, start, next, end, identity), nil
}

func (tailRecursive) AccumulateContext(ctx context.Context, combine Combiner, term Term, start float64, next Next, end float64, identity float64) (float64, error) {
	v, err := trampoline.RunContext(ctx, func() trampoline.Step[float64] {
		return tailStep(combine, term, start, next, end, identity)
	})
	if err != nil {
		return identity, err
	}
	return v, nil
}

// checkEvery is how many terms Imperative folds between context checks.
const checkEvery = 1024

func (imperative) AccumulateContext(ctx context.Context, combine Combiner, term Term, start float64, next Next, end float64, identity float64) (float64, error) {
	acc := identity
	n := 0
	for i := start; i <= end; i = next(i) {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return identity, errors.Cancelled(NameImperative+" accumulate", err).WithDetail("terms", n)
			}
		}
		acc = combine(acc, term(i))
		n++
	}
	return acc, nil
}
