package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/observability"
	"github.com/kbukum/numkit/piseries"
	"github.com/kbukum/numkit/validation"
)

var (
	piAll   bool
	piLimit float64
)

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Approximate π with 8·Σ 1/(x(x+2)), x = 1, 5, 9, ...",
	Long: `Approximate π by the series 8·Σ 1/(x(x+2)) over x = 1, 5, 9, ... up to --limit.

Examples:
  numkit pi
  numkit pi --strategy parallel --limit 1e7
  numkit pi --all`,
	Args: cobra.NoArgs,
	RunE: runPi,
}

func init() {
	rootCmd.AddCommand(piCmd)

	piCmd.Flags().BoolVar(&piAll, "all", false, "evaluate with every strategy")
	piCmd.Flags().Float64Var(&piLimit, "limit", piseries.Limit, "last index of the series")
}

func runPi(cmd *cobra.Command, _ []string) error {
	if err := validation.New().Finite("limit", piLimit).Err(); err != nil {
		return err
	}

	strategies := []accumulate.Strategy{current.strategy}
	if piAll {
		strategies = strategies[:0]
		for _, name := range accumulate.Names() {
			s, err := current.cfg.Accumulate.WithStrategy(name).Resolve()
			if err != nil {
				return err
			}
			strategies = append(strategies, observability.InstrumentStrategy(s, current.metrics))
		}
	}

	for _, s := range strategies {
		v, err := evaluate(cmd, "pi", func(ctx context.Context) (float64, error) {
			return piseries.SolveContext(ctx, s, piLimit)
		})
		if err != nil {
			return err
		}
		printResult(cmd, s.Name(), v)
	}
	return nil
}
