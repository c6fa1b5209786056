package program

import (
	_ "embed"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/reset/internal/models"
)

// TotalWeeks is the length of the full program. Weeks past it silently
// repeat the last phase's schedule.
const TotalWeeks = 12

//go:embed program.toml
var catalogTOML []byte

var (
	phases   map[string]models.ProgramPhase
	workouts map[string][]models.ExerciseSpec
	links    map[string]string
)

// The catalog is fixed data shipped with the binary, so a decode failure
// here is a build defect, not a runtime condition.
func init() {
	var raw models.CatalogTOML
	if err := toml.Unmarshal(catalogTOML, &raw); err != nil {
		panic("Failed to parse embedded program catalog: " + err.Error())
	}

	links = raw.Links

	workouts = make(map[string][]models.ExerciseSpec, len(raw.Workouts))
	for code, w := range raw.Workouts {
		specs := make([]models.ExerciseSpec, 0, len(w.Exercises))
		for _, e := range w.Exercises {
			specs = append(specs, models.ExerciseSpec{
				Name: e.Name,
				Sets: e.Sets,
				Reps: e.Reps,
				Note: e.Note,
				Link: links[e.Name],
			})
		}
		workouts[code] = specs
	}

	phases = make(map[string]models.ProgramPhase, len(raw.Phases))
	for id, p := range raw.Phases {
		phase := models.ProgramPhase{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
		}
		if len(p.Weeks) == 2 {
			phase.StartWeek = p.Weeks[0]
			phase.EndWeek = p.Weeks[1]
		}
		for key, slot := range p.Schedule {
			day, err := strconv.Atoi(key)
			if err != nil || day < 0 || day > 6 {
				panic("Invalid weekday key in program catalog: " + key)
			}
			phase.Schedule[day] = models.WorkoutSlot{
				Kind: slot.Kind,
				Code: slot.Code,
				Name: slot.Name,
			}
		}
		phases[id] = phase
	}
}

// FallbackRest is the synthetic slot used whenever the schedule has no
// entry for a day. Its empty code maps to zero exercises.
func FallbackRest() models.WorkoutSlot {
	return models.WorkoutSlot{
		Kind: models.SlotRest,
		Code: "",
		Name: "Rest / Active Recovery",
	}
}

func PhaseByID(id string) (models.ProgramPhase, bool) {
	p, ok := phases[id]
	return p, ok
}

// PhaseForWeek maps a 1-based week number to its phase. Weeks beyond the
// defined program stay on the last phase.
func PhaseForWeek(week int) models.ProgramPhase {
	for _, p := range phases {
		if week >= p.StartWeek && week <= p.EndWeek {
			return p
		}
	}
	return phases["phase3"]
}

// Phases returns the phases ordered by starting week.
func Phases() []models.ProgramPhase {
	out := make([]models.ProgramPhase, 0, len(phases))
	for _, p := range phases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartWeek < out[j].StartWeek
	})
	return out
}

// SlotFor returns the schedule entry for a phase and weekday, degrading to
// the synthetic rest slot when the phase is unknown or the entry is empty.
func SlotFor(phaseID string, weekday time.Weekday) models.WorkoutSlot {
	p, ok := phases[phaseID]
	if !ok {
		return FallbackRest()
	}
	slot := p.Schedule[int(weekday)]
	if slot.Code == "" {
		return FallbackRest()
	}
	return slot
}

// WorkoutFor returns the ordered exercise list of a workout code. The
// returned slice is shared catalog state and must not be mutated.
func WorkoutFor(code string) []models.ExerciseSpec {
	return workouts[code]
}

// LinkFor returns the external reference URL for an exercise name, or ""
// when none is known.
func LinkFor(name string) string {
	return links[name]
}
