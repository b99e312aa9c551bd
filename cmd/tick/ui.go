package main

import (
	"github.com/spf13/cobra"

	"github.com/tmather/ticklist/internal/tui"
)

// tick ui
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive todo list",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	return tui.Run(store)
}
