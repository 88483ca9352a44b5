package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

func validCandidate() *domain.Assignment {
	return &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeAna,
		AuditDay:             2,
		BalanceCheckEmployee: domain.EmployeeClaudia,
	}
}

func TestValidateAcceptsValidCandidate(t *testing.T) {
	result := Validate(validCandidate(), nil)
	require.True(t, result.Valid)
	require.Empty(t, result.Errors)
}

func TestValidateRejectsSameAuditEmployees(t *testing.T) {
	candidate := validCandidate()
	candidate.AuditEmployee2 = candidate.AuditEmployee1

	result := Validate(candidate, nil)
	require.False(t, result.Valid)
	require.Contains(t, result.Errors, "Audit employees must be different")
}

func TestValidateRejectsOutOfRangeDay(t *testing.T) {
	for _, day := range []int32{0, 6} {
		candidate := validCandidate()
		candidate.AuditDay = day

		result := Validate(candidate, nil)
		require.False(t, result.Valid, "day %d should be rejected", day)
		require.Contains(t, result.Errors, "Audit day must be between 1 and 5 (Monday-Friday)")
	}

	for day := int32(1); day <= 5; day++ {
		candidate := validCandidate()
		candidate.AuditDay = day
		require.True(t, Validate(candidate, nil).Valid, "day %d should be accepted", day)
	}
}

func TestValidateRejectsIneligibleBalanceCheckEmployee(t *testing.T) {
	candidate := validCandidate()
	candidate.BalanceCheckEmployee = domain.EmployeeNalleli
	// Break the pair as well so the balance rule is checked independently.
	candidate.AuditEmployee2 = candidate.AuditEmployee1

	result := Validate(candidate, nil)
	require.False(t, result.Valid)
	require.Contains(t, result.Errors, "Nalleli cannot be assigned to balance checks")
}

func TestValidateRejectsRepeatedPair(t *testing.T) {
	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeClaudia,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeAna,
	}

	// Same pair in either order fails with the pair repetition error.
	for _, swap := range []bool{false, true} {
		candidate := validCandidate()
		candidate.AuditEmployee1 = domain.EmployeeTyler
		candidate.AuditEmployee2 = domain.EmployeeClaudia
		if swap {
			candidate.AuditEmployee1, candidate.AuditEmployee2 = candidate.AuditEmployee2, candidate.AuditEmployee1
		}

		result := Validate(candidate, previous)
		require.False(t, result.Valid)
		require.Contains(t, result.Errors, "Audit pair must be different from previous week")
	}
}

func TestValidateRejectsRepeatedDay(t *testing.T) {
	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeClaudia,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeAna,
	}

	// Different pair but same day fails with the day repetition error only.
	candidate := validCandidate()
	candidate.AuditDay = 3

	result := Validate(candidate, previous)
	require.False(t, result.Valid)
	require.Contains(t, result.Errors, "Audit day must be different from previous week")
	require.NotContains(t, result.Errors, "Audit pair must be different from previous week")
}

func TestValidateWithoutPreviousSkipsRepetitionRules(t *testing.T) {
	// Any structurally valid candidate passes when there is no previous
	// week to differ from.
	candidate := validCandidate()
	candidate.AuditEmployee1 = domain.EmployeeTyler
	candidate.AuditEmployee2 = domain.EmployeeClaudia
	candidate.AuditDay = 3

	result := Validate(candidate, nil)
	require.True(t, result.Valid)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeClaudia,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeAna,
	}

	candidate := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeClaudia,
		AuditEmployee2:       domain.EmployeeTyler,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeNalleli,
	}

	result := Validate(candidate, previous)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 3)
}
