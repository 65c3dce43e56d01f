package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulgidus/basiccalc/internal/batch"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify N [N...]",
		Short: "Classify integers by divisibility",
		Long: `Print the classification code of each argument:
12 if it is even, 13 if it is odd and divisible by 3, 17 otherwise.`,
		Example: "  basiccalc classify 4 9 7 6",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, batch.OpClassify, args)
		},
	}
}

func newFactorialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N [N...]",
		Short: "Compute factorials with uint32 arithmetic",
		Long: `Print n! for each argument. Results above 12! do not fit in 32 bits
and wrap modulo 2^32; such results are marked in the output.`,
		Example: "  basiccalc factorial 0 5 10",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, batch.OpFactorial, args)
		},
	}
}

func (a *app) runOperation(cmd *cobra.Command, op batch.Operation, args []string) error {
	inputs, err := parseInputs(args)
	if err != nil {
		return err
	}

	results := make([]batch.Result, 0, len(inputs))
	for _, n := range inputs {
		res, err := batch.Evaluate(op, n)
		if err != nil {
			return err
		}
		a.logger.Debug("evaluated",
			zap.String("operation", string(op)),
			zap.Uint32("input", n),
			zap.Uint32("output", res.Output),
		)
		if res.Wrapped {
			a.logger.Warn("factorial wrapped past uint32 range", zap.Uint32("input", n))
		}
		results = append(results, res)
	}

	return batch.Render(cmd.OutOrStdout(), results, a.cfg.Output.Format)
}

// parseInputs converts command arguments to uint32 values.
func parseInputs(args []string) ([]uint32, error) {
	inputs := make([]uint32, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w %q: must be an integer between 0 and %d", errInvalidInput, arg, uint32(math.MaxUint32))
		}
		inputs = append(inputs, uint32(n))
	}
	return inputs, nil
}
