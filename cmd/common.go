package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/program"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
)

// requireProfile loads the onboarding profile, failing with a hint when
// setup has not run yet.
func requireProfile(st *storage.Storage) (*models.UserProfile, error) {
	profile, err := st.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("Failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("No profile found. Run 'reset init' first")
	}
	return profile, nil
}

// resolveDayFor maps a calendar date to its program assignment using the
// profile's start date. A broken stored date degrades to day one rather
// than failing the command.
func resolveDayFor(profile *models.UserProfile, date time.Time) program.Day {
	start, err := utils.ParseDayKey(profile.StartDate)
	if err != nil {
		start = date
	}
	return program.ResolveDay(start, date)
}

// printNutrition renders the nutrition/wellness block shared by the daily
// views.
func printNutrition(dl *models.DailyLog) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	calories := "--"
	if dl.Calories != nil {
		calories = fmt.Sprintf("%.0f", *dl.Calories)
	}
	protein := "--"
	if dl.ProteinGrams != nil {
		protein = fmt.Sprintf("%.0f", *dl.ProteinGrams)
	}

	fmt.Printf("%s %s / %d kcal\n", cyan("Calories:"), calories, program.CalorieTarget)
	fmt.Printf("%s %s / %d g\n", cyan("Protein:"), protein, program.ProteinTargetGrams)

	compliance := program.ClassifyCalories(dl.Calories)
	switch compliance {
	case program.ComplianceOnTarget:
		fmt.Printf("%s %s\n", cyan("Compliance:"), green(compliance))
	case program.ComplianceOffTarget:
		fmt.Printf("%s %s\n", cyan("Compliance:"), yellow(compliance))
	default:
		fmt.Printf("%s %s\n", cyan("Compliance:"), faint(compliance))
	}

	if dl.PainLevel != nil {
		fmt.Printf("%s %d/10\n", cyan("Back pain:"), *dl.PainLevel)
	}
	if dl.SleepHours != nil {
		fmt.Printf("%s %.1f h\n", cyan("Sleep:"), *dl.SleepHours)
	}
}
