package utils

import "time"

// Window-start helpers for the financial report. All boundaries are midnight
// in the location of the supplied time.

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent Monday (Monday is day 0).
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
