package models

import "time"

// DailyLog is the per-calendar-date document. Numeric fields are pointers
// so "not logged yet" survives the trip through the store.
type DailyLog struct {
	Date               string          `json:"date"` // "2006-01-02"
	Calories           *float64        `json:"calories,omitempty"`
	ProteinGrams       *float64        `json:"protein,omitempty"`
	PainLevel          *int            `json:"pain_level,omitempty"`
	SleepHours         *float64        `json:"sleep,omitempty"`
	SetsCompleted      map[int][]bool  `json:"sets_completed,omitempty"`
	CompletedExercises []int           `json:"completed_exercises,omitempty"`
	Weights            map[int]string  `json:"weights,omitempty"` // Free-text weight per exercise index.
	UpdatedAt          time.Time       `json:"updated_at"`
}

// WeeklyCheckin is keyed by program week, not by date. A later submission
// for the same week fully replaces the earlier one.
type WeeklyCheckin struct {
	Week       int       `json:"week"`
	Weight     float64   `json:"weight"`
	Waist      float64   `json:"waist"`
	PainLevel  int       `json:"pain_level"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

type UserProfile struct {
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"` // "2006-01-02"
	StartWeight float64   `json:"start_weight"`
	Goals       string    `json:"goals"`
	CreatedAt   time.Time `json:"created_at"`
}
