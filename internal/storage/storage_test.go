package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/misterclayt0n/reset/internal/models"
)

// newTestStore opens a throwaway local database, the same way DEV_MODE
// points the CLI at a file instead of the hosted store.
func newTestStore(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "reset.db"))
	require.NoError(t, err)

	st, err := NewStorageWithDB(db, "test-user")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestProfileLifecycle(t *testing.T) {
	st := newTestStore(t)

	// Nothing stored yet.
	p, err := st.GetProfile()
	require.NoError(t, err)
	assert.Nil(t, p)

	exists, err := st.ProfileExists()
	require.NoError(t, err)
	assert.False(t, exists)

	profile := &models.UserProfile{
		Name:        "John",
		StartDate:   "2025-01-06",
		StartWeight: 180,
		Goals:       "Lose weight, reduce back pain",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, st.CreateProfile(profile))

	got, err := st.GetProfile()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "John", got.Name)
	assert.Equal(t, "2025-01-06", got.StartDate)
	assert.Equal(t, 180.0, got.StartWeight)

	exists, err = st.ProfileExists()
	require.NoError(t, err)
	assert.True(t, exists)

	// The profile is created once; a second insert fails on the key.
	assert.Error(t, st.CreateProfile(profile))
}

func TestDailyLogLazyCreation(t *testing.T) {
	st := newTestStore(t)

	dl, err := st.GetDailyLog("2025-01-06")
	require.NoError(t, err)
	assert.Nil(t, dl)

	dl, err = st.GetOrCreateDailyLog("2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, dl)
	assert.Equal(t, "2025-01-06", dl.Date)

	// Lazy creation does not persist anything by itself.
	stored, err := st.GetDailyLog("2025-01-06")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDailyLogRoundtrip(t *testing.T) {
	st := newTestStore(t)

	dl := &models.DailyLog{
		Date:               "2025-01-06",
		Calories:           floatPtr(1820),
		ProteinGrams:       floatPtr(150),
		PainLevel:          intPtr(2),
		SleepHours:         floatPtr(7.5),
		SetsCompleted:      map[int][]bool{0: {true, false, true}, 2: {true}},
		CompletedExercises: []int{2},
		Weights:            map[int]string{0: "35"},
	}
	require.NoError(t, st.SaveDailyLog(dl))

	got, err := st.GetDailyLog("2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1820.0, *got.Calories)
	assert.Equal(t, 150.0, *got.ProteinGrams)
	assert.Equal(t, 2, *got.PainLevel)
	assert.Equal(t, 7.5, *got.SleepHours)
	assert.Equal(t, []bool{true, false, true}, got.SetsCompleted[0])
	assert.Equal(t, []bool{true}, got.SetsCompleted[2])
	assert.Equal(t, []int{2}, got.CompletedExercises)
	assert.Equal(t, "35", got.Weights[0])
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestDailyLogMergePreservesFields(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDailyLog(&models.DailyLog{
		Date:     "2025-01-06",
		Calories: floatPtr(1800),
	}))

	// A later write that never touched calories must not clobber them.
	require.NoError(t, st.SaveDailyLog(&models.DailyLog{
		Date:         "2025-01-06",
		ProteinGrams: floatPtr(160),
	}))

	got, err := st.GetDailyLog("2025-01-06")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Calories)
	assert.Equal(t, 1800.0, *got.Calories)
	require.NotNil(t, got.ProteinGrams)
	assert.Equal(t, 160.0, *got.ProteinGrams)
}

func TestDailyLogOnePerDate(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDailyLog(&models.DailyLog{Date: "2025-01-06", Calories: floatPtr(1700)}))
	require.NoError(t, st.SaveDailyLog(&models.DailyLog{Date: "2025-01-06", Calories: floatPtr(1900)}))

	logs, err := st.ListDailyLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1900.0, *logs[0].Calories)
}

func TestListDailyLogsOrdered(t *testing.T) {
	st := newTestStore(t)

	for _, d := range []string{"2025-01-08", "2025-01-06", "2025-01-07"} {
		require.NoError(t, st.SaveDailyLog(&models.DailyLog{Date: d}))
	}

	logs, err := st.ListDailyLogs()
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "2025-01-06", logs[0].Date)
	assert.Equal(t, "2025-01-07", logs[1].Date)
	assert.Equal(t, "2025-01-08", logs[2].Date)
}

func TestCheckinOverwriteByWeek(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveCheckin(&models.WeeklyCheckin{Week: 3, Weight: 178, PainLevel: 4}))
	require.NoError(t, st.SaveCheckin(&models.WeeklyCheckin{Week: 3, Weight: 176.5, PainLevel: 2, Notes: "felt stronger"}))

	checkins, err := st.GetCheckins()
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.Equal(t, 3, checkins[0].Week)
	assert.Equal(t, 176.5, checkins[0].Weight)
	assert.Equal(t, 2, checkins[0].PainLevel)
	assert.Equal(t, "felt stronger", checkins[0].Notes)
}

func TestCheckinsOrderedByWeek(t *testing.T) {
	st := newTestStore(t)

	// Submitted out of order; listing must come back ascending.
	for _, week := range []int{5, 2, 9, 1} {
		require.NoError(t, st.SaveCheckin(&models.WeeklyCheckin{Week: week, Weight: 180}))
	}

	checkins, err := st.GetCheckins()
	require.NoError(t, err)
	require.Len(t, checkins, 4)
	for i, want := range []int{1, 2, 5, 9} {
		assert.Equal(t, want, checkins[i].Week)
	}
}

func TestGetCheckinAbsent(t *testing.T) {
	st := newTestStore(t)

	c, err := st.GetCheckin(7)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestUserScoping(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "reset.db"))
	require.NoError(t, err)

	alice, err := NewStorageWithDB(db, "alice")
	require.NoError(t, err)
	bob, err := NewStorageWithDB(db, "bob")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, alice.SaveCheckin(&models.WeeklyCheckin{Week: 1, Weight: 150}))

	theirs, err := bob.GetCheckins()
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestWatchDailyLogDeliversRevisions(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDailyLog(&models.DailyLog{
		Date:      "2025-01-06",
		Calories:  floatPtr(1800),
		UpdatedAt: time.Now().UTC(),
	}))

	changes := make(chan *models.DailyLog, 1)
	stop := st.WatchDailyLog("2025-01-06", 10*time.Millisecond, func(dl *models.DailyLog) {
		select {
		case changes <- dl:
		default:
		}
	})
	defer stop()

	select {
	case dl := <-changes:
		require.NotNil(t, dl.Calories)
		assert.Equal(t, 1800.0, *dl.Calories)
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}
}
