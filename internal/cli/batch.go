package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulgidus/basiccalc/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML or JSON job file",
		Long: `Evaluate every job in FILE. A job names an operation and its inputs:

  jobs:
    - operation: classify
      inputs: [4, 9, 7]
    - operation: factorial
      inputs: [0, 5, 13]

Inputs are evaluated concurrently; output keeps file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			a.logger.Info("running batch",
				zap.String("file", args[0]),
				zap.Int("jobs", len(jobs)),
				zap.Int("workers", a.cfg.Batch.Workers),
			)

			results, err := batch.NewRunner(a.cfg.Batch.Workers, a.logger).Run(cmd.Context(), jobs)
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			return batch.Render(cmd.OutOrStdout(), results, a.cfg.Output.Format)
		},
	}

	cmd.Flags().Int("workers", 0, "number of concurrent evaluators (default from config)")
	_ = a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))

	return cmd
}
