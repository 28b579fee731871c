package cmd

import (
	"math"
	"slices"
	"strings"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/solver"
)

// functions are the named functions accepted by root, newton and fixed-point.
var functions = map[string]solver.Func{
	"sin":     math.Sin,
	"cos":     math.Cos,
	"cubic":   func(x float64) float64 { return x*x*x - 2*x - 3 },
	"square":  func(x float64) float64 { return x*x - 2 },
	"golden":  func(x float64) float64 { return 1 + 1/x },
	"inverse": func(x float64) float64 { return 2 / x },
	"exp":     func(x float64) float64 { return math.Exp(-x) },
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupFunction(name string) (solver.Func, error) {
	f, ok := functions[strings.ToLower(name)]
	if !ok {
		return nil, errors.InvalidArgument("function", "must be one of: "+strings.Join(functionNames(), ", "))
	}
	return f, nil
}
