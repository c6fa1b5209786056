package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

var (
	setupName      string
	setupStartDate string
	setupWeight    float64
	setupGoals     string
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your profile and start the 12-week program",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exists, err := st.ProfileExists()
		if err != nil {
			return fmt.Errorf("Failed to check for an existing profile: %w", err)
		}
		if exists {
			return fmt.Errorf("Profile already exists, the program is already set up")
		}

		if setupStartDate == "" {
			setupStartDate = utils.DayKey(time.Now())
		}
		if _, err := utils.ParseDayKey(setupStartDate); err != nil {
			return fmt.Errorf("Invalid start date %q, expected YYYY-MM-DD", setupStartDate)
		}

		profile := &models.UserProfile{
			Name:        setupName,
			StartDate:   setupStartDate,
			StartWeight: setupWeight,
			Goals:       setupGoals,
			CreatedAt:   time.Now().UTC(),
		}
		if err := st.CreateProfile(profile); err != nil {
			return fmt.Errorf("Failed to create profile: %w", err)
		}

		fmt.Printf("✅ Welcome to the Reset program, %s. Week 1 starts %s\n", setupName, setupStartDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)

	initSetupCmd.Flags().StringVarP(&setupName, "name", "n", "", "Your name")
	initSetupCmd.Flags().StringVarP(&setupStartDate, "start-date", "s", "", "Program start date (YYYY-MM-DD, defaults to today)")
	initSetupCmd.Flags().Float64VarP(&setupWeight, "weight", "w", 0, "Starting weight (lbs)")
	initSetupCmd.Flags().StringVarP(&setupGoals, "goals", "g", "Lose weight, reduce back pain", "Main goal")
	initSetupCmd.MarkFlagRequired("name")
	initSetupCmd.MarkFlagRequired("weight")
}
