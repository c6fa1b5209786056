package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reset",
	Short: "CLI companion for the 12-week Reset training program",
}

func Execute() error {
	return rootCmd.Execute()
}
