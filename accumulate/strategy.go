package accumulate

import (
	"sort"
	"strings"

	"github.com/kbukum/numkit/errors"
)

// Term maps a sequence index to the value being combined.
type Term func(x float64) float64

// Next produces the index following x.
type Next func(x float64) float64

// Combiner folds two values into one.
type Combiner func(a, b float64) float64

// Strategy evaluates a fold over a term sequence.
type Strategy interface {
	// Name returns the registered name of the strategy.
	Name() string
	// Accumulate folds term(start), term(next(start)), ... up to end with
	// combine, returning identity for an empty range.
	Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64

// Accumulate calls f.
func (f StrategyFunc) Accumulate(combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	return f(combine, term, start, next, end, identity)
}

// Name returns "func".
func (f StrategyFunc) Name() string { return "func" }

// Accumulate evaluates the fold with the given strategy.
func Accumulate(strategy Strategy, combine Combiner, term Term, start float64, next Next, end float64, identity float64) float64 {
	return strategy.Accumulate(combine, term, start, next, end, identity)
}

// Strategy names.
const (
	NameRecursive     = "recursive"
	NameTailRecursive = "tail-recursive"
	NameImperative    = "imperative"
	NameParallel      = "parallel"
)

var registry = map[string]Strategy{
	NameRecursive:     Recursive,
	NameTailRecursive: TailRecursive,
	NameImperative:    Imperative,
	NameParallel:      Parallel{},
}

// Lookup returns the strategy registered under name. Matching ignores case
// and accepts underscores in place of hyphens.
func Lookup(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if s, ok := registry[key]; ok {
		return s, nil
	}
	return nil, errors.InvalidArgument("strategy",
		"unknown strategy "+name+", expected one of "+strings.Join(Names(), ", "))
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strategies returns one instance of every registered strategy, ordered by name.
func Strategies() []Strategy {
	names := Names()
	out := make([]Strategy, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}
