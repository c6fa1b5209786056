package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/program"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [date]",
	Short: "Show what was logged on a given day (YYYY-MM-DD, defaults to today)",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := requireProfile(st)
		if err != nil {
			return err
		}

		date := time.Now()
		if len(args) == 1 {
			date, err = utils.ParseDayKey(args[0])
			if err != nil {
				return fmt.Errorf("Invalid date %q, expected YYYY-MM-DD", args[0])
			}
		}

		day := resolveDayFor(profile, date)
		dl, err := st.GetDailyLog(utils.DayKey(date))
		if err != nil {
			return err
		}

		printBoxedHeader(date.Format("Mon, 02 Jan 2006"))
		printMetric("Week", fmt.Sprintf("%d (%s)", day.Week, day.Phase.Name))
		printMetric("Workout", day.Slot.Name)
		fmt.Println()

		if dl == nil {
			fmt.Println("Nothing logged on this day.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		if len(day.Exercises) > 0 {
			completed := 0
			for i, ex := range day.Exercises {
				numSets := program.ResolveSetCount(ex)
				done := 0
				for s, ok := range dl.SetsCompleted[i] {
					if s < numSets && ok {
						done++
					}
				}
				marker := faint(fmt.Sprintf("%d/%d sets", done, numSets))
				if program.IsExerciseComplete(dl, i) {
					marker = green("complete")
					completed++
				}
				line := fmt.Sprintf("%s %s", cyan(fmt.Sprintf("%d.", i+1)), ex.Name)
				if w, ok := dl.Weights[i]; ok && w != "" {
					line += fmt.Sprintf(" @ %s lbs", w)
				}
				fmt.Printf("%s  %s\n", line, marker)
			}
			fmt.Printf("\n%s %d/%d exercises\n\n", cyan("Completed:"), completed, len(day.Exercises))
		}

		printNutrition(dl)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
