// Package main implements the tick CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tick",
	Short:         "Ticklist - a small todo list manager",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	rootDataFile string
	rootVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDataFile, "file", "f", "", "Todos data file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}
