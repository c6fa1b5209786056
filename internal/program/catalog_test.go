package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPhases(t *testing.T) {
	all := Phases()
	require.Len(t, all, 3)

	assert.Equal(t, "phase1", all[0].ID)
	assert.Equal(t, 1, all[0].StartWeek)
	assert.Equal(t, 4, all[0].EndWeek)

	assert.Equal(t, "phase2", all[1].ID)
	assert.Equal(t, 5, all[1].StartWeek)
	assert.Equal(t, 8, all[1].EndWeek)

	assert.Equal(t, "phase3", all[2].ID)
	assert.Equal(t, 9, all[2].StartWeek)
	assert.Equal(t, 12, all[2].EndWeek)
}

func TestCatalogSchedulesAreComplete(t *testing.T) {
	// Every weekday of every phase has a slot, and every slot's code maps
	// to a non-empty workout.
	for _, phase := range Phases() {
		for wd, slot := range phase.Schedule {
			require.NotEmpty(t, slot.Code, "%s weekday %d", phase.ID, wd)
			require.NotEmpty(t, slot.Kind, "%s weekday %d", phase.ID, wd)
			assert.NotEmpty(t, WorkoutFor(slot.Code), "%s weekday %d code %s", phase.ID, wd, slot.Code)
		}
	}
}

func TestCatalogWorkoutContents(t *testing.T) {
	a := WorkoutFor("A")
	require.Len(t, a, 6)
	assert.Equal(t, "Goblet Squats", a[0].Name)
	assert.Equal(t, "10-12", a[0].Reps)
	assert.NotEmpty(t, a[0].Link)

	rest := WorkoutFor("REST")
	require.Len(t, rest, 2)
	assert.Equal(t, "Check-in", rest[0].Name)
}

func TestCatalogLinks(t *testing.T) {
	assert.Contains(t, LinkFor("Bench Press"), "exrx.net")
	assert.Empty(t, LinkFor("Interpretive Dance"))
}

func TestFallbackRestHasNoExercises(t *testing.T) {
	slot := FallbackRest()
	assert.Empty(t, slot.Code)
	assert.Empty(t, WorkoutFor(slot.Code))
}
