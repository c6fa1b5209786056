package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/program"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var (
	logDate     string
	logCalories string
	logProtein  string
	logPain     string
	logSleep    string
	logExercise int
	logWeight   string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record nutrition, wellness and lifted weights for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if _, err := requireProfile(st); err != nil {
			return err
		}

		date := logDate
		if date == "" {
			date = utils.DayKey(time.Now())
		}
		if _, err := utils.ParseDayKey(date); err != nil {
			return fmt.Errorf("Invalid date %q, expected YYYY-MM-DD", date)
		}

		dl, err := st.GetOrCreateDailyLog(date)
		if err != nil {
			return fmt.Errorf("Failed to load log for %s: %w", date, err)
		}

		changed := false
		fields := map[string]string{
			"calories": logCalories,
			"protein":  logProtein,
			"pain":     logPain,
			"sleep":    logSleep,
		}
		for field, value := range fields {
			if !cmd.Flags().Changed(field) {
				continue
			}
			if err := program.RecordField(dl, field, value); err != nil {
				return err
			}
			changed = true
		}

		if cmd.Flags().Changed("weight") {
			if logExercise < 1 {
				return fmt.Errorf("--weight needs --exercise to say which exercise it belongs to")
			}
			program.RecordWeight(dl, logExercise-1, logWeight)
			changed = true
		}

		if !changed {
			return fmt.Errorf("Nothing to record. Pass at least one of --calories, --protein, --pain, --sleep, --weight")
		}

		if err := st.SaveDailyLog(dl); err != nil {
			return fmt.Errorf("Failed to save log for %s: %w", date, err)
		}

		fmt.Printf("✅ Logged %s\n\n", date)
		printNutrition(dl)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Date to log (YYYY-MM-DD, defaults to today)")
	logCmd.Flags().StringVar(&logCalories, "calories", "", "Calories consumed")
	logCmd.Flags().StringVar(&logProtein, "protein", "", "Protein in grams")
	logCmd.Flags().StringVar(&logPain, "pain", "", "Back pain level (0-10)")
	logCmd.Flags().StringVar(&logSleep, "sleep", "", "Hours of sleep")
	logCmd.Flags().IntVarP(&logExercise, "exercise", "e", 0, "Exercise index the weight entry belongs to")
	logCmd.Flags().StringVarP(&logWeight, "weight", "w", "", "Weight used for an exercise (free text)")
}
