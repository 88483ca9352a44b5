package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekStartNormalizesToMonday(t *testing.T) {
	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"monday afternoon", time.Date(2025, 1, 13, 15, 30, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 1, 19, 23, 59, 59, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, monday, WeekStart(tc.in))
		})
	}
}

func TestWeekStartConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	// 02:00 Tuesday UTC+8 is Monday 18:00 UTC, still the same week.
	in := time.Date(2025, 1, 14, 2, 0, 0, 0, loc)
	require.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), WeekStart(in))
}

func TestNextWeekStart(t *testing.T) {
	wednesday := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), NextWeekStart(wednesday))
}

func TestPreviousWeek(t *testing.T) {
	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), PreviousWeek(monday))
}
