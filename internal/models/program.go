package models

// Workout slot kinds as stored in the catalog.
const (
	SlotStrength       = "strength"
	SlotCardio         = "cardio"
	SlotActiveRecovery = "active_recovery"
	SlotRest           = "rest"
)

type ProgramPhase struct {
	ID          string
	Name        string
	Description string
	StartWeek   int
	EndWeek     int
	Schedule    [7]WorkoutSlot // Indexed by weekday, 0 = Sunday.
}

type WorkoutSlot struct {
	Kind string `json:"kind"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ExerciseSpec is one prescribed exercise of a workout.
// Sets is either an integer or a free-text descriptor ("Endurance",
// "Circuit"); program.ResolveSetCount normalizes it for tracking.
type ExerciseSpec struct {
	Name string `json:"name"`
	Sets any    `json:"sets"`
	Reps string `json:"reps"`
	Note string `json:"note,omitempty"`
	Link string `json:"link,omitempty"`
}

//
// For TOML parsing only
//

type CatalogTOML struct {
	Phases   map[string]PhaseTOML   `toml:"phases"`
	Workouts map[string]WorkoutTOML `toml:"workouts"`
	Links    map[string]string      `toml:"links"`
}

type PhaseTOML struct {
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	Weeks       []int               `toml:"weeks"` // [first, last]
	Schedule    map[string]SlotTOML `toml:"schedule"`
}

type SlotTOML struct {
	Kind string `toml:"kind"`
	Code string `toml:"code"`
	Name string `toml:"name"`
}

type WorkoutTOML struct {
	Exercises []ExerciseSpecTOML `toml:"exercise"`
}

type ExerciseSpecTOML struct {
	Name string `toml:"name"`
	Sets any    `toml:"sets"`
	Reps string `toml:"reps"`
	Note string `toml:"note,omitempty"`
}
