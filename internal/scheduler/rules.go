package scheduler

import (
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

// allDays are the weekdays an audit may fall on (1-5 for Mon-Fri).
var allDays = []int32{1, 2, 3, 4, 5}

// IsValidDay reports whether d is a weekday in the audit range.
func IsValidDay(d int32) bool {
	return d >= 1 && d <= 5
}

// IsEligibleForBalanceCheck reports whether e may be assigned the
// branch balance check.
func IsEligibleForBalanceCheck(e domain.Employee) bool {
	for _, candidate := range domain.BalanceCheckRoster {
		if candidate == e {
			return true
		}
	}
	return false
}

// availablePairs returns the audit pairs that differ from the previous
// week's pair. With no previous pair every pair is available.
func availablePairs(previous *domain.Pair) []domain.Pair {
	if previous == nil {
		return domain.AuditPairs
	}

	pairs := make([]domain.Pair, 0, len(domain.AuditPairs))
	for _, pair := range domain.AuditPairs {
		if !pair.Equal(*previous) {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// availableDays returns the audit days that differ from the previous
// week's day. With no previous day every weekday is available.
func availableDays(previousDay int32) []int32 {
	if previousDay == 0 {
		return allDays
	}

	days := make([]int32, 0, len(allDays))
	for _, day := range allDays {
		if day != previousDay {
			days = append(days, day)
		}
	}
	return days
}
