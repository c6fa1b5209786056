package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/program"
	"github.com/spf13/cobra"
)

var (
	phaseFilter   string // Optional phase id filter (phase1, phase2, phase3).
	withExercises bool   // Also print every workout's exercise list.
)

var showProgramCmd = &cobra.Command{
	Use:   "show-program",
	Short: "Display the full 12-week program (optionally filter by phase)",
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, phase := range program.Phases() {
			if phaseFilter != "" && !strings.EqualFold(phase.ID, phaseFilter) {
				continue
			}

			fmt.Printf("\n%s (weeks %d-%d)\n", green(strings.ToUpper(phase.Name)), phase.StartWeek, phase.EndWeek)
			fmt.Printf("%s: %s\n", cyan("Description"), phase.Description)
			fmt.Println(strings.Repeat("=", 60))

			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				slot := phase.Schedule[int(wd)]
				fmt.Printf("%s: %s [%s]\n", yellow(wd.String()), slot.Name, slot.Kind)

				if !withExercises {
					continue
				}
				for i, ex := range program.WorkoutFor(slot.Code) {
					fmt.Printf("   %d. %s: %v × %s\n", i+1, ex.Name, ex.Sets, ex.Reps)
					if ex.Note != "" {
						fmt.Printf("      %s\n", ex.Note)
					}
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showProgramCmd)

	showProgramCmd.Flags().StringVarP(&phaseFilter, "phase", "p", "", "Only show one phase (phase1, phase2, phase3)")
	showProgramCmd.Flags().BoolVarP(&withExercises, "exercises", "e", false, "Also list each workout's exercises")
}
