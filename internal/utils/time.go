package utils

import "time"

// DayKeyFormat is the canonical key for daily-log documents.
const DayKeyFormat = "2006-01-02"

func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

func ParseDayKey(s string) (time.Time, error) {
	return time.Parse(DayKeyFormat, s)
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference from a to b, floored at 0.
// Dates are compared in UTC so DST transitions cannot skew the count.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	days := int(ub.Sub(ua).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
