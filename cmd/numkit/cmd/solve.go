package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/solver"
	"github.com/kbukum/numkit/validation"
)

var functionHelp = `
Functions:
  sin      sin x
  cos      cos x
  cubic    x³ - 2x - 3
  square   x² - 2
  golden   1 + 1/x
  inverse  2/x, oscillates unless damped
  exp      e^-x`

var rootFindCmd = &cobra.Command{
	Use:   "root <function> <a> <b>",
	Short: "Find a root by the half-interval method",
	Long: `Find a root of a function on [a, b] by bisection. The function must
take strictly opposite signs at a and b.

Examples:
  numkit root sin 2 4
  numkit root cubic 1 2 --epsilon 1e-9` + functionHelp,
	Args: cobra.ExactArgs(3),
	RunE: runRoot,
}

var newtonCmd = &cobra.Command{
	Use:   "newton <function> <guess>",
	Short: "Find a root by Newton's method",
	Long: `Find a root of a function by Newton's method from an initial guess,
using a numerical derivative.

Examples:
  numkit newton sin 3
  numkit newton square 1` + functionHelp,
	Args: cobra.ExactArgs(2),
	RunE: runNewton,
}

var fixedPointDamp bool

var fixedPointCmd = &cobra.Command{
	Use:   "fixed-point <function> <guess>",
	Short: "Find a fixed point f(x) = x by iteration",
	Long: `Iterate a function from an initial guess until consecutive values
are within the solver tolerance.

Examples:
  numkit fixed-point cos 1
  numkit fixed-point golden 1 --damp
  numkit fixed-point inverse 1 --damp --timeout 5s` + functionHelp,
	Args: cobra.ExactArgs(2),
	RunE: runFixedPoint,
}

func init() {
	rootCmd.AddCommand(rootFindCmd)
	rootCmd.AddCommand(newtonCmd)
	rootCmd.AddCommand(fixedPointCmd)

	fixedPointCmd.Flags().BoolVar(&fixedPointDamp, "damp", false, "apply average damping before iterating")
}

// parsePoints parses the numeric arguments that follow the function name.
func parsePoints(names []string, args []string) ([]float64, error) {
	points := make([]float64, len(args))
	v := validation.New()
	for i, arg := range args {
		p, err := parseFloat(names[i], arg)
		if err != nil {
			return nil, err
		}
		v.Finite(names[i], p)
		points[i] = p
	}
	return points, v.Err()
}

func runRoot(cmd *cobra.Command, args []string) error {
	f, err := lookupFunction(args[0])
	if err != nil {
		return err
	}
	points, err := parsePoints([]string{"a", "b"}, args[1:])
	if err != nil {
		return err
	}

	v, err := evaluate(cmd, "root", func(ctx context.Context) (float64, error) {
		return current.solver.HalfIntervalMethodContext(ctx, f, points[0], points[1])
	})
	if err != nil {
		return err
	}
	printResult(cmd, "root", v)
	return nil
}

func runNewton(cmd *cobra.Command, args []string) error {
	f, err := lookupFunction(args[0])
	if err != nil {
		return err
	}
	points, err := parsePoints([]string{"guess"}, args[1:])
	if err != nil {
		return err
	}

	v, err := evaluate(cmd, "newton", func(ctx context.Context) (float64, error) {
		return current.solver.NewtonsMethodContext(ctx, f, points[0])
	})
	if err != nil {
		return err
	}
	printResult(cmd, "root", v)
	return nil
}

func runFixedPoint(cmd *cobra.Command, args []string) error {
	f, err := lookupFunction(args[0])
	if err != nil {
		return err
	}
	points, err := parsePoints([]string{"guess"}, args[1:])
	if err != nil {
		return err
	}

	label := "fixed-point"
	transform := func(f solver.Func) solver.Func { return f }
	if fixedPointDamp {
		label = "fixed-point damped"
		transform = solver.AverageDamp
	}

	v, err := evaluate(cmd, "fixed-point", func(ctx context.Context) (float64, error) {
		return current.solver.FixedPointOfTransformContext(ctx, f, transform, points[0])
	})
	if err != nil {
		return err
	}
	printResult(cmd, label, v)
	return nil
}
