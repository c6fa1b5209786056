package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/spf13/cobra"
)

var (
	checkinWeek   int
	checkinWeight float64
	checkinWaist  float64
	checkinPain   int
	checkinNotes  string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Submit the weekly check-in (weight, waist, pain, notes)",
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

		week := checkinWeek
		if week == 0 {
			week = resolveDayFor(profile, time.Now()).Week
		}
		if week < 1 {
			return fmt.Errorf("Invalid week %d", week)
		}

		previous, err := st.GetCheckin(week)
		if err != nil {
			return fmt.Errorf("Failed to check for an earlier submission: %w", err)
		}

		checkin := &models.WeeklyCheckin{
			Week:       week,
			Weight:     checkinWeight,
			Waist:      checkinWaist,
			PainLevel:  checkinPain,
			Notes:      checkinNotes,
			RecordedAt: time.Now().UTC(),
		}
		if err := st.SaveCheckin(checkin); err != nil {
			return err
		}

		if previous != nil {
			fmt.Printf("✅ Weekly check-in saved for week %d (replaced the earlier submission)\n", week)
		} else {
			fmt.Printf("✅ Weekly check-in saved for week %d\n", week)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)

	checkinCmd.Flags().IntVar(&checkinWeek, "week", 0, "Program week (defaults to the current week)")
	checkinCmd.Flags().Float64VarP(&checkinWeight, "weight", "w", 0, "Current weight (lbs)")
	checkinCmd.Flags().Float64Var(&checkinWaist, "waist", 0, "Waist (inches)")
	checkinCmd.Flags().IntVarP(&checkinPain, "pain", "p", 0, "Average pain level this week (0-10)")
	checkinCmd.Flags().StringVarP(&checkinNotes, "notes", "m", "", "Wins / challenges / notes")
	checkinCmd.MarkFlagRequired("weight")
}
