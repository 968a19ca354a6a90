package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanelogic/logicgrid/internal/display"
	"github.com/kanelogic/logicgrid/internal/puzzlefile"
	"github.com/kanelogic/logicgrid/pkg/csp"
)

var solveTimeout time.Duration

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle.yaml>",
	Short: "Solve a single puzzle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		path := args[0]

		p, err := puzzlefile.Load(path)
		if err != nil {
			return err
		}

		ctx, cancel := withOptionalTimeout(solveTimeout)
		defer cancel()

		start := time.Now()
		sol, err := csp.SolveWithDeadline(ctx, p)
		elapsed := time.Since(start)
		logger.Info().Str("path", path).Dur("elapsed", elapsed).Msg("solve finished")
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		display.Print(cmd.OutOrStdout(), path, sol)
		return nil
	},
}

func init() {
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this long (0 = no deadline)")
}
