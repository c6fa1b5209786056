package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/program"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workout, set completion, nutrition and wellness",
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

		now := time.Now()
		day := resolveDayFor(profile, now)

		dl, err := st.GetOrCreateDailyLog(utils.DayKey(now))
		if err != nil {
			return fmt.Errorf("Failed to load today's log: %w", err)
		}

		printBoxedHeader(fmt.Sprintf("WEEK %d - %s", day.Week, strings.ToUpper(day.Phase.Name)))

		progress := day.Week * 100 / program.TotalWeeks
		if progress > 100 {
			progress = 100
		}
		printMetric("Today", day.Date.Format("Mon, 02 Jan 2006"))
		printMetric("Workout", day.Slot.Name)
		printMetric("Phase", fmt.Sprintf("%s (weeks %d-%d)", day.Phase.Name, day.Phase.StartWeek, day.Phase.EndWeek))
		printMetric("Program progress", fmt.Sprintf("%d%%", progress))
		fmt.Println()

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		if len(day.Exercises) == 0 {
			fmt.Println(faint("Nothing scheduled. Enjoy the rest day."))
		}

		for i, ex := range day.Exercises {
			numSets := program.ResolveSetCount(ex)

			name := yellow(ex.Name)
			if program.IsExerciseComplete(dl, i) {
				name = green(ex.Name + " ✓")
			}
			fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", i+1)), name)
			fmt.Printf("   %s %v × %s\n", cyan("Target:"), ex.Sets, ex.Reps)

			markers := make([]string, numSets)
			done := dl.SetsCompleted[i]
			for s := 0; s < numSets; s++ {
				if s < len(done) && done[s] {
					markers[s] = green("✓")
				} else {
					markers[s] = faint(fmt.Sprintf("%d", s+1))
				}
			}
			fmt.Printf("   %s %s\n", cyan("Sets:"), strings.Join(markers, " "))

			if w, ok := dl.Weights[i]; ok && w != "" {
				fmt.Printf("   %s %s lbs\n", cyan("Logged weight:"), w)
			}
			if ex.Note != "" {
				fmt.Printf("   %s %s\n", faint("Tip:"), faint(ex.Note))
			}
			if ex.Link != "" {
				fmt.Printf("   %s %s\n", faint("Ref:"), faint(ex.Link))
			}
		}
		fmt.Println()

		printNutrition(dl)
		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText2(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText2(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
