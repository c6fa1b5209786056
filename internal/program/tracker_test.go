package program

import (
	"testing"

	"github.com/misterclayt0n/reset/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExercises() []models.ExerciseSpec {
	return []models.ExerciseSpec{
		{Name: "Goblet Squats", Sets: 3, Reps: "10-12"},
		{Name: "McGill Curl-Up", Sets: "Endurance", Reps: "10s holds"},
		{Name: "Chin Tucks", Sets: 2, Reps: "10-15"},
	}
}

func TestResolveSetCount(t *testing.T) {
	tests := []struct {
		sets any
		want int
	}{
		{3, 3},
		{int64(3), 3},
		{float64(2), 2},
		{"1", 1},
		{"3 rounds", 3},
		{"Endurance", 1},
		{"Circuit", 1},
		{nil, 1},
	}

	for _, tc := range tests {
		got := ResolveSetCount(models.ExerciseSpec{Sets: tc.sets})
		assert.Equal(t, tc.want, got, "sets=%v", tc.sets)
	}
}

func TestToggleSetInitializesFresh(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}

	require.NoError(t, ToggleSet(dl, testExercises(), 0, 1))

	require.Len(t, dl.SetsCompleted[0], 3)
	assert.Equal(t, []bool{false, true, false}, dl.SetsCompleted[0])
	assert.Empty(t, dl.CompletedExercises)
	assert.False(t, dl.UpdatedAt.IsZero())
}

func TestToggleSetIdempotence(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}
	exs := testExercises()

	require.NoError(t, ToggleSet(dl, exs, 0, 0))
	assert.True(t, dl.SetsCompleted[0][0])

	require.NoError(t, ToggleSet(dl, exs, 0, 0))
	assert.False(t, dl.SetsCompleted[0][0])
	assert.Empty(t, dl.CompletedExercises)
}

func TestToggleSetCompletionEquivalence(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}
	exs := testExercises()

	// Completing every set of the single-set exercise marks it complete.
	require.NoError(t, ToggleSet(dl, exs, 1, 0))
	assert.Contains(t, dl.CompletedExercises, 1)
	assert.True(t, IsExerciseComplete(dl, 1))

	// Completing 2 of 3 sets does not.
	require.NoError(t, ToggleSet(dl, exs, 0, 0))
	require.NoError(t, ToggleSet(dl, exs, 0, 1))
	assert.NotContains(t, dl.CompletedExercises, 0)

	// The third set completes it.
	require.NoError(t, ToggleSet(dl, exs, 0, 2))
	assert.Contains(t, dl.CompletedExercises, 0)

	// Untoggling one set takes it back out.
	require.NoError(t, ToggleSet(dl, exs, 0, 1))
	assert.NotContains(t, dl.CompletedExercises, 0)
	assert.Contains(t, dl.CompletedExercises, 1)

	// The invariant holds after the whole sequence: membership iff all true.
	for idx, sets := range dl.SetsCompleted {
		all := true
		for _, done := range sets {
			if !done {
				all = false
			}
		}
		assert.Equal(t, all, IsExerciseComplete(dl, idx), "exercise %d", idx)
	}
}

func TestToggleSetReinitializesStaleSequence(t *testing.T) {
	// A stored sequence from an older workout shape is discarded wholesale.
	dl := &models.DailyLog{
		Date:               "2025-01-06",
		SetsCompleted:      map[int][]bool{0: {true}},
		CompletedExercises: []int{0},
	}

	require.NoError(t, ToggleSet(dl, testExercises(), 0, 2))

	require.Len(t, dl.SetsCompleted[0], 3)
	assert.Equal(t, []bool{false, false, true}, dl.SetsCompleted[0])
	assert.NotContains(t, dl.CompletedExercises, 0)
}

func TestToggleSetBounds(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}
	exs := testExercises()

	assert.Error(t, ToggleSet(dl, exs, -1, 0))
	assert.Error(t, ToggleSet(dl, exs, 3, 0))
	assert.Error(t, ToggleSet(dl, exs, 0, 3))
	assert.Error(t, ToggleSet(dl, exs, 1, 1)) // "Endurance" resolves to 1 set.
}

func TestRecordField(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}

	require.NoError(t, RecordField(dl, "calories", "1850"))
	require.NoError(t, RecordField(dl, "protein", "155"))
	require.NoError(t, RecordField(dl, "pain", "3"))
	require.NoError(t, RecordField(dl, "sleep", "7.5"))

	require.NotNil(t, dl.Calories)
	assert.Equal(t, 1850.0, *dl.Calories)
	require.NotNil(t, dl.ProteinGrams)
	assert.Equal(t, 155.0, *dl.ProteinGrams)
	require.NotNil(t, dl.PainLevel)
	assert.Equal(t, 3, *dl.PainLevel)
	require.NotNil(t, dl.SleepHours)
	assert.Equal(t, 7.5, *dl.SleepHours)
}

func TestRecordFieldAcceptsOutOfRangeValues(t *testing.T) {
	// Range validation is a UI concern; the tracker stores what it is given.
	dl := &models.DailyLog{Date: "2025-01-06"}

	require.NoError(t, RecordField(dl, "calories", "-200"))
	assert.Equal(t, -200.0, *dl.Calories)

	require.NoError(t, RecordField(dl, "pain", "42"))
	assert.Equal(t, 42, *dl.PainLevel)
}

func TestRecordFieldRejectsGarbage(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}

	assert.Error(t, RecordField(dl, "calories", "a lot"))
	assert.Error(t, RecordField(dl, "mood", "great"))
}

func TestRecordWeight(t *testing.T) {
	dl := &models.DailyLog{Date: "2025-01-06"}

	RecordWeight(dl, 0, "35")
	RecordWeight(dl, 2, "60-70")

	assert.Equal(t, "35", dl.Weights[0])
	assert.Equal(t, "60-70", dl.Weights[2])
}

func TestClassifyCalories(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.Equal(t, ComplianceNoData, ClassifyCalories(nil))
	assert.Equal(t, ComplianceOnTarget, ClassifyCalories(f(1800)))
	assert.Equal(t, ComplianceOnTarget, ClassifyCalories(f(1700)))
	assert.Equal(t, ComplianceOnTarget, ClassifyCalories(f(1900)))
	assert.Equal(t, ComplianceOffTarget, ClassifyCalories(f(1699)))
	assert.Equal(t, ComplianceOffTarget, ClassifyCalories(f(2000)))
	assert.Equal(t, ComplianceOffTarget, ClassifyCalories(f(0)))
}
