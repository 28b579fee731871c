package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/logger"
	"github.com/kbukum/numkit/observability"
)

// parseFloat parses a positional argument.
func parseFloat(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.InvalidArgument(name, "must be a number").WithCause(err)
	}
	return v, nil
}

// evaluate runs fn as a tracked operation and logs the result.
func evaluate(cmd *cobra.Command, op string, fn func(ctx context.Context) (float64, error)) (float64, error) {
	v, err := observability.Track(cmd.Context(), current.metrics, op, fn)
	if err != nil {
		current.log.Debug("evaluation failed", logger.ErrorFields(op, err))
		return 0, err
	}
	current.log.Debug("evaluation finished", logger.Fields(logger.FieldOperation, op, logger.FieldValue, v))
	return v, nil
}

func printResult(cmd *cobra.Command, label string, v float64) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-16s %.10f\n", label, v)
}
