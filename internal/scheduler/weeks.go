package scheduler

import "time"

// WeekStart normalizes t to the Monday of its week, at midnight UTC.
// The Monday acts as the natural key identifying a week's assignment.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// NextWeekStart returns the Monday of the week after the one
// containing now.
func NextWeekStart(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, 7)
}

// PreviousWeek returns the Monday exactly seven days before weekStart.
func PreviousWeek(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -7)
}
