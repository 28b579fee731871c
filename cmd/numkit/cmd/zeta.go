package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/validation"
	"github.com/kbukum/numkit/zeta"
)

var zetaCmd = &cobra.Command{
	Use:   "zeta <s>",
	Short: "Approximate ζ(s) by its series and its Euler product",
	Long: `Approximate the Riemann zeta function at s two ways:
  series   - Σ n^-s for n = 1..1000
  product  - Π 1/(1 - p^-s) over primes p ≤ 1000

Examples:
  numkit zeta 2
  numkit zeta 3 --strategy parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runZeta,
}

func init() {
	rootCmd.AddCommand(zetaCmd)
}

func runZeta(cmd *cobra.Command, args []string) error {
	s, err := parseFloat("s", args[0])
	if err != nil {
		return err
	}
	if err := validation.New().Finite("s", s).Positive("s", s).Err(); err != nil {
		return err
	}

	series, err := evaluate(cmd, "zeta.series", func(ctx context.Context) (float64, error) {
		return zeta.SumSolveContext(ctx, current.strategy, s)
	})
	if err != nil {
		return err
	}
	product, err := evaluate(cmd, "zeta.product", func(ctx context.Context) (float64, error) {
		return zeta.ProductSolveContext(ctx, current.strategy, s)
	})
	if err != nil {
		return err
	}

	printResult(cmd, "series", series)
	printResult(cmd, "product", product)
	return nil
}
