package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the check-in history and weight trend",
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

		checkins, err := st.GetCheckins()
		if err != nil {
			return err
		}

		printBoxedHeader("PROGRESS")
		printMetric("Starting weight", fmt.Sprintf("%.1f lbs", profile.StartWeight))
		fmt.Println()

		if len(checkins) == 0 {
			fmt.Println("No check-ins yet. Submit one with 'reset checkin'.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		previous := profile.StartWeight
		for _, c := range checkins {
			delta := c.Weight - previous
			arrow := green(fmt.Sprintf("%+.1f", delta))
			if delta > 0 {
				arrow = red(fmt.Sprintf("%+.1f", delta))
			}

			fmt.Printf("%s %.1f lbs (%s)", cyan(fmt.Sprintf("Week %-2d", c.Week)), c.Weight, arrow)
			if c.Waist > 0 {
				fmt.Printf("  waist %.1f\"", c.Waist)
			}
			fmt.Printf("  pain %d/10", c.PainLevel)
			fmt.Printf("  %s\n", faint(c.RecordedAt.Format("2006-01-02")))
			if c.Notes != "" {
				fmt.Printf("        %s\n", faint(c.Notes))
			}

			previous = c.Weight
		}

		total := checkins[len(checkins)-1].Weight - profile.StartWeight
		fmt.Println()
		printMetric("Total change", fmt.Sprintf("%+.1f lbs", total))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
