package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/storage"
	"github.com/misterclayt0n/reset/internal/utils"
	"github.com/spf13/cobra"
)

// calendarCmd prints a month grid with each day colored by its scheduled
// workout kind, plus a legend. Days before the program start are plain.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display the program schedule as a calendar",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		st, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := requireProfile(st)
		if err != nil {
			return err
		}
		start, err := utils.ParseDayKey(profile.StartDate)
		if err != nil {
			return fmt.Errorf("Failed to parse program start date: %w", err)
		}

		kindColors := map[string]func(a ...interface{}) string{
			models.SlotStrength:       color.New(color.FgRed).SprintFunc(),
			models.SlotCardio:         color.New(color.FgGreen).SprintFunc(),
			models.SlotActiveRecovery: color.New(color.FgCyan).SprintFunc(),
			models.SlotRest:           color.New(color.FgBlue).SprintFunc(),
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		// Print initial empty slots.
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		// Print day numbers colored by the scheduled workout kind.
		for dayNum := 1; dayNum <= lastOfMonth.Day(); dayNum++ {
			date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.Local)
			dayStr := fmt.Sprintf("%2d", dayNum)

			if !date.Before(start) {
				assignment := resolveDayFor(profile, date)
				if colFunc, ok := kindColors[assignment.Slot.Kind]; ok {
					dayStr = colFunc(dayStr)
				}
			}

			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n") // Extra newline after the calendar

		// Print a legend mapping colors to workout kinds.
		fmt.Println("Legend:")
		fmt.Printf("  %s: strength\n", kindColors[models.SlotStrength]("██"))
		fmt.Printf("  %s: cardio\n", kindColors[models.SlotCardio]("██"))
		fmt.Printf("  %s: active recovery\n", kindColors[models.SlotActiveRecovery]("██"))
		fmt.Printf("  %s: rest / check-in\n", kindColors[models.SlotRest]("██"))

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
