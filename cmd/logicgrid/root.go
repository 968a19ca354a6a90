package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "logicgrid",
	Short: "Solve logic-grid puzzles",
	Long:  `logicgrid runs the pkg/csp constraint solver against YAML puzzle files.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(demoCmd)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
