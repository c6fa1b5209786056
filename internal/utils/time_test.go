package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyRoundtrip(t *testing.T) {
	d := time.Date(2025, 3, 9, 15, 30, 0, 0, time.Local)
	key := DayKey(d)
	assert.Equal(t, "2025-03-09", key)

	parsed, err := ParseDayKey(key)
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 9, parsed.Day())
}

func TestParseDayKeyRejectsGarbage(t *testing.T) {
	_, err := ParseDayKey("09/03/2025")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2025, 3, 9, 23, 59, 59, 123, time.Local)
	sod := StartOfDay(d)
	assert.Equal(t, 0, sod.Hour())
	assert.Equal(t, 0, sod.Minute())
	assert.Equal(t, d.Day(), sod.Day())
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, 1, DaysBetween(start, start.AddDate(0, 0, 1)))
	assert.Equal(t, 7, DaysBetween(start, start.AddDate(0, 0, 7)))
	assert.Equal(t, 83, DaysBetween(start, start.AddDate(0, 0, 83)))

	// Time of day must not matter.
	lateStart := time.Date(2025, 1, 6, 23, 0, 0, 0, time.Local)
	earlyToday := time.Date(2025, 1, 7, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(lateStart, earlyToday))
}

func TestDaysBetweenFloorsAtZero(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)
	before := start.AddDate(0, 0, -10)
	assert.Equal(t, 0, DaysBetween(start, before))
}
