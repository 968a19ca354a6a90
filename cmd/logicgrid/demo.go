package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanelogic/logicgrid/internal/demopuzzle"
	"github.com/kanelogic/logicgrid/internal/display"
	"github.com/kanelogic/logicgrid/pkg/csp"
)

var demoCmd = &cobra.Command{
	Use:   "demo [readme]",
	Short: "Solve a puzzle built in-process, no file needed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] != "readme" {
			return fmt.Errorf("demo: unknown demo %q (only %q is built in)", args[0], "readme")
		}

		p, err := demopuzzle.Build()
		if err != nil {
			return err
		}
		sol, err := csp.Solve(p)
		if err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		display.Print(cmd.OutOrStdout(), demopuzzle.Name, sol)
		return nil
	},
}
