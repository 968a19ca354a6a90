package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanelogic/logicgrid/internal/batch"
	"github.com/kanelogic/logicgrid/internal/display"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Solve every puzzle file in a directory concurrently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		results, err := batch.Run(cmd.Context(), logger, args[0], batchWorkers)
		if err != nil {
			return err
		}

		failures := 0
		for _, r := range results {
			if r.Err != nil {
				failures++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
				continue
			}
			display.Print(cmd.OutOrStdout(), r.Path, r.Solution)
		}
		if failures > 0 {
			return fmt.Errorf("batch: %d of %d puzzle files failed to solve", failures, len(results))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent solves (0 = number of CPUs)")
}
