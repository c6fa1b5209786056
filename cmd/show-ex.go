package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/program"
	"github.com/spf13/cobra"
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display every appearance of an exercise across the program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.ToLower(args[0])

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		found := false
		for _, phase := range program.Phases() {
			seen := make(map[string]bool)
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				slot := phase.Schedule[int(wd)]
				if seen[slot.Code] {
					continue
				}
				seen[slot.Code] = true

				for _, ex := range program.WorkoutFor(slot.Code) {
					if !strings.Contains(strings.ToLower(ex.Name), query) {
						continue
					}
					if !found {
						fmt.Println(boldGreen("Exercise appearances:"))
						found = true
					}

					fmt.Printf("\n  %s: %s\n", boldCyan("Name"), ex.Name)
					fmt.Printf("  %s: %s, %s (%s)\n", boldCyan("Where"), phase.Name, slot.Name, yellow(wd.String()))
					fmt.Printf("  %s: %v × %s\n", boldCyan("Target"), ex.Sets, ex.Reps)
					if ex.Note != "" {
						fmt.Printf("  %s: %s\n", boldCyan("Cue"), ex.Note)
					}
					if ex.Link != "" {
						fmt.Printf("  %s: %s\n", boldCyan("Reference"), ex.Link)
					}
				}
			}
		}

		if !found {
			return fmt.Errorf("no exercise matching %q in the program", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
}
