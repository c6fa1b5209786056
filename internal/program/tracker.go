package program

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/reset/internal/models"
)

// Nutrition targets of the program.
const (
	CalorieTarget      = 1800
	CalorieBandLow     = 1700
	CalorieBandHigh    = 1900
	ProteinTargetGrams = 160
)

type Compliance string

const (
	ComplianceOnTarget  Compliance = "On Target"
	ComplianceOffTarget Compliance = "Off Target"
	ComplianceNoData    Compliance = "No Data"
)

// ResolveSetCount normalizes an exercise's set target for tracking: numeric
// targets are taken as-is, text targets contribute their leading integer,
// and anything else ("Endurance", "Circuit") counts as a single set.
func ResolveSetCount(spec models.ExerciseSpec) int {
	switch v := spec.Sets.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		digits := 0
		for digits < len(v) && v[digits] >= '0' && v[digits] <= '9' {
			digits++
		}
		if digits == 0 {
			return 1
		}
		n, err := strconv.Atoi(v[:digits])
		if err != nil {
			return 1
		}
		return n
	default:
		return 1
	}
}

// ToggleSet flips one set's completion flag on the log and re-establishes
// the invariant that an exercise index appears in CompletedExercises iff
// every one of its set flags is true. A stored sequence whose length does
// not match the exercise's resolved set count is re-initialized all-false
// before the toggle.
func ToggleSet(log *models.DailyLog, exercises []models.ExerciseSpec, exerciseIdx, setIdx int) error {
	if exerciseIdx < 0 || exerciseIdx >= len(exercises) {
		return fmt.Errorf("exercise index %d out of range", exerciseIdx)
	}

	numSets := ResolveSetCount(exercises[exerciseIdx])
	if setIdx < 0 || setIdx >= numSets {
		return fmt.Errorf("set index %d out of range for %q (%d sets)", setIdx, exercises[exerciseIdx].Name, numSets)
	}

	if log.SetsCompleted == nil {
		log.SetsCompleted = make(map[int][]bool)
	}

	sets := log.SetsCompleted[exerciseIdx]
	if len(sets) != numSets {
		sets = make([]bool, numSets)
	}
	sets[setIdx] = !sets[setIdx]
	log.SetsCompleted[exerciseIdx] = sets

	allDone := true
	for _, done := range sets {
		if !done {
			allDone = false
			break
		}
	}

	completed := log.CompletedExercises[:0]
	for _, idx := range log.CompletedExercises {
		if idx != exerciseIdx {
			completed = append(completed, idx)
		}
	}
	if allDone {
		completed = append(completed, exerciseIdx)
	}
	log.CompletedExercises = completed

	log.UpdatedAt = time.Now().UTC()
	return nil
}

// IsExerciseComplete reports whether the given exercise index is marked
// fully complete on the log.
func IsExerciseComplete(log *models.DailyLog, exerciseIdx int) bool {
	for _, idx := range log.CompletedExercises {
		if idx == exerciseIdx {
			return true
		}
	}
	return false
}

// RecordField sets one scalar daily-log field from its text form. Values
// are stored as given; range validation is left to the caller.
func RecordField(log *models.DailyLog, field, value string) error {
	switch field {
	case "calories":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid calories value %q", value)
		}
		log.Calories = &v
	case "protein":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid protein value %q", value)
		}
		log.ProteinGrams = &v
	case "pain":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid pain level %q", value)
		}
		log.PainLevel = &v
	case "sleep":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid sleep hours %q", value)
		}
		log.SleepHours = &v
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	log.UpdatedAt = time.Now().UTC()
	return nil
}

// RecordWeight stores a free-text weight entry against an exercise index.
func RecordWeight(log *models.DailyLog, exerciseIdx int, entry string) {
	if log.Weights == nil {
		log.Weights = make(map[int]string)
	}
	log.Weights[exerciseIdx] = entry
	log.UpdatedAt = time.Now().UTC()
}

// ClassifyCalories is the nutrition compliance indicator: on target inside
// [CalorieBandLow, CalorieBandHigh] inclusive, off target outside, no data
// when nothing is logged.
func ClassifyCalories(calories *float64) Compliance {
	if calories == nil {
		return ComplianceNoData
	}
	if *calories >= CalorieBandLow && *calories <= CalorieBandHigh {
		return ComplianceOnTarget
	}
	return ComplianceOffTarget
}
