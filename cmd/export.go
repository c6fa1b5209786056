package cmd

import (
	"fmt"

	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export profile, daily logs and check-ins to a TOML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "reset_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ExportToTOML(outputFile); err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Printf("✅ Data exported successfully to %s\n", outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
