package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/sqrt"
	"github.com/kbukum/numkit/validation"
)

var (
	sqrtMethod string
	sqrtAll    bool
)

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <x>",
	Short: "Compute a square root",
	Long: `Compute √x by one of the methods:
  recursive       - improve a guess by direct recursion
  tail-recursive  - the same, driven by a trampoline
  average-damp    - fixed point of the average-damped y -> x/y
  newton          - Newton's method on y -> y² - x

Examples:
  numkit sqrt 2
  numkit sqrt 2147483647 --method average-damp
  numkit sqrt 16 --all`,
	Args: cobra.ExactArgs(1),
	RunE: runSqrt,
}

func init() {
	rootCmd.AddCommand(sqrtCmd)

	sqrtCmd.Flags().StringVarP(&sqrtMethod, "method", "m", sqrt.MethodNewton, "square root method")
	sqrtCmd.Flags().BoolVar(&sqrtAll, "all", false, "compute with every method")
}

func runSqrt(cmd *cobra.Command, args []string) error {
	x, err := parseFloat("x", args[0])
	if err != nil {
		return err
	}
	methods := []string{sqrtMethod}
	if sqrtAll {
		methods = sqrt.Methods
	}
	if err := validation.New().
		Finite("x", x).
		NonNegative("x", x).
		OneOf("method", sqrtMethod, sqrt.Methods).
		Err(); err != nil {
		return err
	}

	for _, method := range methods {
		v, err := evaluate(cmd, "sqrt", func(ctx context.Context) (float64, error) {
			return sqrt.ComputeContext(ctx, current.solver, method, x)
		})
		if err != nil {
			return err
		}
		printResult(cmd, method, v)
	}
	return nil
}
