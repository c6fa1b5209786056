package program

import (
	"time"

	"github.com/misterclayt0n/reset/internal/models"
	"github.com/misterclayt0n/reset/internal/utils"
)

// Day is the resolved program assignment for a single calendar date.
type Day struct {
	Date        time.Time
	ElapsedDays int
	Week        int // 1-based program week.
	Phase       models.ProgramPhase
	Slot        models.WorkoutSlot
	Exercises   []models.ExerciseSpec
}

// ResolveDay maps a program start date and a wall-clock date to that day's
// assignment. Dates before the start count as day 0, and the weekday comes
// from the real calendar, not from the offset — so the Mon/Wed/Fri strength
// cadence only lines up when the program starts on a Monday.
func ResolveDay(startDate, today time.Time) Day {
	elapsed := utils.DaysBetween(startDate, today)
	week := elapsed/7 + 1
	phase := PhaseForWeek(week)
	slot := SlotFor(phase.ID, today.Weekday())

	return Day{
		Date:        utils.StartOfDay(today),
		ElapsedDays: elapsed,
		Week:        week,
		Phase:       phase,
		Slot:        slot,
		Exercises:   WorkoutFor(slot.Code),
	}
}
