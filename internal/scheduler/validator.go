package scheduler

import (
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

// Result is the outcome of validating a candidate assignment. Every
// violated rule is listed, not only the first, so callers can surface
// all problems at once.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks candidate against the domain rules. The previous
// week's assignment, if any, must be looked up by the caller; the
// repetition rules are only applied when previous is non-nil. Rule
// violations are returned as data, never as an error.
func Validate(candidate *domain.Assignment, previous *domain.Assignment) Result {
	errs := []string{}

	if candidate.AuditEmployee1 == candidate.AuditEmployee2 {
		errs = append(errs, "Audit employees must be different")
	}

	if !IsValidDay(candidate.AuditDay) {
		errs = append(errs, "Audit day must be between 1 and 5 (Monday-Friday)")
	}

	if !IsEligibleForBalanceCheck(candidate.BalanceCheckEmployee) {
		errs = append(errs, "Nalleli cannot be assigned to balance checks")
	}

	if previous != nil {
		if candidate.AuditPair().Equal(previous.AuditPair()) {
			errs = append(errs, "Audit pair must be different from previous week")
		}
		if candidate.AuditDay == previous.AuditDay {
			errs = append(errs, "Audit day must be different from previous week")
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
